package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
)

// TelemetryFrameSize is the fixed width of the host bound position frame: a
// little endian IEEE-754 double carrying the actuator extension in meters.
const TelemetryFrameSize = 8

// DecodeTelemetry converts a full telemetry frame into the extension length.
// The caller must only hand over complete frames; any other length is a bug
// in the read path rather than a link condition, so it panics.
func DecodeTelemetry(frame []byte) float64 {
	if len(frame) != TelemetryFrameSize {
		panic(fmt.Sprintf("telemetry frame must be %d bytes, got %d", TelemetryFrameSize, len(frame)))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(frame))
}

// EncodeTelemetry produces the frame the firmware would emit for a given
// extension length. The controller never sends these; it exists for bench
// rigs and tests that stand in for the device.
func EncodeTelemetry(meters float64) (frame []byte) {
	frame = make([]byte, TelemetryFrameSize)
	binary.LittleEndian.PutUint64(frame, math.Float64bits(meters))
	return
}
