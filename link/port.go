package link

import (
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// BAUD_RATE is fixed by the driver firmware and is not configurable.
const BAUD_RATE = 9600

// Queue depths for the channels between the UI and the background tasks.
// Bounded so a stalled consumer produces drops instead of unbounded growth.
const (
	CMD_QUEUE_DEPTH       = 100
	STATUS_QUEUE_DEPTH    = 100
	TELEMETRY_QUEUE_DEPTH = 10
)

// Stream is the byte oriented duplex pipe the controller talks over.
type Stream interface {
	io.Reader
	io.Writer
}

// SharedPort owns the serial handle on behalf of the telemetry reader and the
// command dispatcher. Both directions go through the same lock so one frame's
// bytes are never interleaved with another's on the wire. The underlying port
// must be opened with a read timeout or a quiet link would hold the lock and
// starve the writer.
type SharedPort struct {
	lock sync.Mutex
	rwc  io.ReadWriteCloser
}

func NewSharedPort(rwc io.ReadWriteCloser) *SharedPort {
	return &SharedPort{rwc: rwc}
}

func (p *SharedPort) Read(buf []byte) (n int, err error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.rwc.Read(buf)
}

func (p *SharedPort) Write(buf []byte) (n int, err error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	return p.rwc.Write(buf)
}

func (p *SharedPort) Close() error {
	return p.rwc.Close()
}

// Open opens the serial device at the fixed firmware baud rate and wraps it
// for shared reader/dispatcher access.
func Open(path string) (port *SharedPort, err error) {
	raw, err := serial.Open(path, &serial.Mode{BaudRate: BAUD_RATE})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open serial device %s", path)
	}

	if err = raw.SetReadTimeout(20 * time.Millisecond); err != nil {
		raw.Close()
		return nil, errors.Wrap(err, "unable to set read timeout")
	}

	return NewSharedPort(raw), nil
}
