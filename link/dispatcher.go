package link

import (
	"fmt"
	"time"

	"github.com/edaniels/golog"

	"github.com/CodedInternet/golinact/protocol"
)

// WRITE_PACING throttles the command rate to what the driver firmware can
// process without flooding the link.
const WRITE_PACING = 50 * time.Millisecond

// Dispatcher is the single authoritative writer to the serial stream. It
// drains the command queue in FIFO order and reports every outcome as
// operator readable status text; I/O errors never escalate past it.
type Dispatcher struct {
	stream Stream
	queue  <-chan protocol.Command
	status chan<- string
	logger golog.Logger
}

func NewDispatcher(stream Stream, queue <-chan protocol.Command, status chan<- string, logger golog.Logger) *Dispatcher {
	return &Dispatcher{
		stream: stream,
		queue:  queue,
		status: status,
		logger: logger,
	}
}

// Run drains the queue until it is closed or the process exits.
func (d *Dispatcher) Run() {
	for cmd := range d.queue {
		if _, err := d.stream.Write(cmd.Encode()); err != nil {
			d.logger.Debugw("command write failed", "error", err)
			d.report(fmt.Sprintf("Serial error: %v", err))
		} else {
			d.report(cmd.Describe())
		}

		time.Sleep(WRITE_PACING)
	}
}

func (d *Dispatcher) report(msg string) {
	select {
	case d.status <- msg:
	default:
		// the operator only ever reads the most recent outcome
	}
}
