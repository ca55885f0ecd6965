package protocol

import (
	"encoding/binary"
	"fmt"
)

// Opcodes understood by the driver firmware. The frame layout behind each
// opcode is a fixed contract and must not change without a protocol version
// bump on both sides.
const (
	CMD_SET_SPEED     = 0x01
	CMD_SET_DIRECTION = 0x02
)

// Actuator identifies one of the two physical channels on the driver board.
type Actuator uint8

const (
	ACTUATOR_M1 Actuator = 0x00
	ACTUATOR_M2 Actuator = 0x01
)

func (a Actuator) String() string {
	if a == ACTUATOR_M2 {
		return "M2"
	}
	return "M1"
}

// Other returns the opposite channel, used when the operator toggles the
// active actuator.
func (a Actuator) Other() Actuator {
	if a == ACTUATOR_M1 {
		return ACTUATOR_M2
	}
	return ACTUATOR_M1
}

// Direction is the orientation of motor rotation.
type Direction uint8

const (
	DIR_BACKWARD Direction = 0x00
	DIR_FORWARD  Direction = 0x01
)

func (d Direction) String() string {
	if d == DIR_FORWARD {
		return "forward"
	}
	return "backward"
}

// Command is a single device bound instruction. Each variant knows its own
// frame layout and the status text the operator sees once it has been written.
type Command interface {
	Encode() (raw []byte)
	Describe() string
}

// SetSpeed commands a new speed on one actuator.
// Frame: opcode, actuator id, u16 speed little endian.
type SetSpeed struct {
	Speed    uint16
	Actuator Actuator
}

func (c SetSpeed) Encode() (raw []byte) {
	raw = make([]byte, 4)
	raw[0] = CMD_SET_SPEED
	raw[1] = byte(c.Actuator)
	binary.LittleEndian.PutUint16(raw[2:4], c.Speed)
	return
}

func (c SetSpeed) Describe() string {
	return fmt.Sprintf("Set speed to %d", c.Speed)
}

// SetDirection commands a new rotation direction on one actuator.
// Frame: opcode, actuator id, direction flag.
type SetDirection struct {
	Direction Direction
	Actuator  Actuator
}

func (c SetDirection) Encode() (raw []byte) {
	raw = make([]byte, 3)
	raw[0] = CMD_SET_DIRECTION
	raw[1] = byte(c.Actuator)
	raw[2] = byte(c.Direction)
	return
}

func (c SetDirection) Describe() string {
	return fmt.Sprintf("Set direction to %s", c.Direction)
}
