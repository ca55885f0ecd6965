package link

import (
	"time"

	"github.com/edaniels/golog"

	"github.com/CodedInternet/golinact/protocol"
)

// POLL_INTERVAL paces the telemetry poll so the reader neither busy spins nor
// starves the dispatcher of access to the shared stream.
const POLL_INTERVAL = 10 * time.Millisecond

// TelemetryReader polls the shared stream for position frames and publishes
// each decoded sample. Noise on the telemetry channel is expected link
// behaviour: short or failed reads are dropped without a status message and
// the next interval simply tries again.
type TelemetryReader struct {
	stream  Stream
	samples chan<- float64
	closeCh chan struct{}
	logger  golog.Logger
}

func NewTelemetryReader(stream Stream, samples chan<- float64, logger golog.Logger) *TelemetryReader {
	return &TelemetryReader{
		stream:  stream,
		samples: samples,
		closeCh: make(chan struct{}),
		logger:  logger,
	}
}

// Run loops until Close is called or the process exits. It never escalates an
// I/O error above the task boundary.
func (r *TelemetryReader) Run() {
	buf := make([]byte, protocol.TelemetryFrameSize)

	for {
		select {
		case <-r.closeCh:
			return
		case <-time.After(POLL_INTERVAL):
		}

		n, err := r.stream.Read(buf)
		if err != nil {
			r.logger.Debugw("telemetry read failed", "error", err)
			continue
		}
		if n != protocol.TelemetryFrameSize {
			// short frame, discard and resync on the next interval
			continue
		}

		select {
		case r.samples <- protocol.DecodeTelemetry(buf):
		default:
			// consumer only ever wants the latest sample
		}
	}
}

func (r *TelemetryReader) Close() {
	close(r.closeCh)
}
