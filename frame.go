package ema8314

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Every request starts with the 7-byte card id, the 8-byte NUL-padded
// password and a one-byte opcode. Replies are always 34 bytes with a
// status flag at byte 32.
const (
	cardID    = "EMA8314"
	headerLen = len(cardID) + passwordLen + 1

	passwordLen = 8
	replyLen    = 34
	flagOffset  = 32

	// flagOK is what the device puts at byte 32 of a reply when the
	// command was accepted.
	flagOK = 0x63
)

// DefaultPassword is the factory password of the module.
const DefaultPassword = "12345678"

// Device opcodes.
const (
	opReboot         = 0x02
	opSetPort        = 0x03
	opSetPassword    = 0x04
	opResetPassword  = 0x05
	opSetIP          = 0x06
	opFirmware       = 0x07
	opSetOutputs     = 0x30
	opReadOutputs    = 0x31
	opSetOutputModes = 0x32
	opReadOutputMode = 0x33
	opReadTemp       = 0x50
	opReadAllTemps   = 0x51
	opSetLimits      = 0x52
	opReadLimits     = 0x53
	opSetAllLimits   = 0x54
	opReadAllLimits  = 0x55
	opSetSensorType  = 0x56
	opReadSensorType = 0x57
	opSetSensorTypes = 0x58
	opReadSensors    = 0x59
	opSensorStatus   = 0x5A
	opControlStatus  = 0x5B
	opControlEnable  = 0x5C
	opControlDisable = 0x5D
	opSetControlMask = 0x5E
	opControlMask    = 0x5F
	opWdtEnable      = 0x60
	opWdtDisable     = 0x61
	opWdtSet         = 0x62
	opWdtRead        = 0x63
	opSetControlMode = 0x64
	opControlMode    = 0x65
)

// opName maps opcodes to the names used in errors.
func opName(op byte) string {
	switch op {
	case opReboot:
		return "reboot"
	case opSetPort:
		return "set port"
	case opSetPassword:
		return "set password"
	case opResetPassword:
		return "reset password"
	case opSetIP:
		return "set ip"
	case opFirmware:
		return "firmware version"
	case opSetOutputs:
		return "set outputs"
	case opReadOutputs:
		return "read outputs"
	case opSetOutputModes:
		return "set output modes"
	case opReadOutputMode:
		return "read output modes"
	case opReadTemp:
		return "read temperature"
	case opReadAllTemps:
		return "read temperatures"
	case opSetLimits:
		return "set limits"
	case opReadLimits:
		return "read limits"
	case opSetAllLimits:
		return "set all limits"
	case opReadAllLimits:
		return "read all limits"
	case opSetSensorType:
		return "set sensor type"
	case opReadSensorType:
		return "read sensor type"
	case opSetSensorTypes:
		return "set sensor types"
	case opReadSensors:
		return "read sensor types"
	case opSensorStatus:
		return "read sensor status"
	case opControlStatus:
		return "read control status"
	case opControlEnable:
		return "enable control"
	case opControlDisable:
		return "disable control"
	case opSetControlMask:
		return "set control mask"
	case opControlMask:
		return "read control mask"
	case opWdtEnable:
		return "enable watchdog"
	case opWdtDisable:
		return "disable watchdog"
	case opWdtSet:
		return "set watchdog"
	case opWdtRead:
		return "read watchdog"
	case opSetControlMode:
		return "set control mode"
	case opControlMode:
		return "read control mode"
	}
	return fmt.Sprintf("opcode 0x%02x", op)
}

// StatusError is returned when the device answers a request with a
// status flag other than 0x63.
type StatusError struct {
	Op   string
	Code byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ema8314: %s rejected by device (flag 0x%02x)", e.Op, e.Code)
}

// frame builds a request: card id, password, opcode, payload.
func frame(password string, op byte, payload ...byte) []byte {
	b := make([]byte, 0, headerLen+len(payload))
	b = append(b, cardID...)
	var pw [passwordLen]byte
	copy(pw[:], password)
	b = append(b, pw[:]...)
	b = append(b, op)
	return append(b, payload...)
}

// checkReply validates length and status flag of a raw reply.
func checkReply(op byte, reply []byte) error {
	if len(reply) < replyLen {
		return fmt.Errorf("ema8314: %s: short reply (%d bytes)", opName(op), len(reply))
	}
	if reply[flagOffset] != flagOK {
		return &StatusError{Op: opName(op), Code: reply[flagOffset]}
	}
	return nil
}

// The device sends multi-byte integers and float32 values little-endian.

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func float32At(reply []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(reply[off:]))
}

func uint16At(reply []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(reply[off:])
}

// packMask folds four booleans into the channel bitmask used all over
// the protocol (bit n = channel n).
func packMask(states [4]bool) byte {
	var m byte
	for i, on := range states {
		if on {
			m |= 1 << i
		}
	}
	return m
}

func unpackMask(m byte) (states [4]bool) {
	for i := range states {
		states[i] = m&(1<<i) != 0
	}
	return states
}
