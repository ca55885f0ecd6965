package link

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// testStream stands in for the serial device: queued frames are handed out
// one per read, writes are recorded in order. It counts overlapping calls so
// tests can assert the shared port actually serializes access.
type testStream struct {
	lock  sync.Mutex
	rx    [][]byte
	tx    [][]byte
	rxerr error
	txerr error

	inFlight int32
	overlaps int32
}

func (t *testStream) Read(buf []byte) (int, error) {
	t.enter()
	defer t.leave()

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.rxerr != nil {
		return 0, t.rxerr
	}
	if len(t.rx) == 0 {
		// quiet link, behaves like a read timeout
		return 0, nil
	}

	frame := t.rx[0]
	t.rx = t.rx[1:]
	return copy(buf, frame), nil
}

func (t *testStream) Write(buf []byte) (int, error) {
	t.enter()
	defer t.leave()

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.txerr != nil {
		return 0, t.txerr
	}

	frame := make([]byte, len(buf))
	copy(frame, buf)
	t.tx = append(t.tx, frame)
	return len(buf), nil
}

func (t *testStream) Close() error {
	return nil
}

func (t *testStream) enter() {
	if atomic.AddInt32(&t.inFlight, 1) > 1 {
		atomic.AddInt32(&t.overlaps, 1)
	}
	// hold the stream long enough for a concurrent caller to show up
	time.Sleep(time.Millisecond)
}

func (t *testStream) leave() {
	atomic.AddInt32(&t.inFlight, -1)
}

func (t *testStream) written() [][]byte {
	t.lock.Lock()
	defer t.lock.Unlock()

	out := make([][]byte, len(t.tx))
	copy(out, t.tx)
	return out
}

func (t *testStream) queueFrames(frames ...[]byte) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.rx = append(t.rx, frames...)
}

var errSimulatedIO = errors.New("this is a simulated I/O error")
