package emasim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(password string, op byte, payload ...byte) []byte {
	b := []byte("EMA8314")
	var pw [8]byte
	copy(pw[:], password)
	b = append(b, pw[:]...)
	b = append(b, op)
	return append(b, payload...)
}

func TestHandleIgnoresForeignTraffic(t *testing.T) {
	d := &Device{password: "12345678"}
	assert.Nil(t, d.handle([]byte("GET / HTTP/1.1")))
	assert.Nil(t, d.handle([]byte{0x01, 0x02}))
}

func TestHandleRefusesWrongPassword(t *testing.T) {
	d := &Device{password: "12345678"}
	reply := d.handle(request("intruder", 0x07))
	require.Len(t, reply, replyLen)
	assert.NotEqual(t, byte(flagOK), reply[flagOffset])
}

func TestHandleFirmware(t *testing.T) {
	d := &Device{password: "12345678", firmware: [2]byte{1, 3}}
	reply := d.handle(request("12345678", 0x07))
	require.Len(t, reply, replyLen)
	assert.Equal(t, byte(flagOK), reply[flagOffset])
	assert.Equal(t, byte(1), reply[1])
	assert.Equal(t, byte(3), reply[2])
}

func TestHandleUnknownOpcode(t *testing.T) {
	d := &Device{password: "12345678"}
	reply := d.handle(request("12345678", 0xff))
	require.Len(t, reply, replyLen)
	assert.Equal(t, byte(flagRefused), reply[flagOffset])
}

func TestHandleRejectsBadChannel(t *testing.T) {
	d := &Device{password: "12345678"}
	reply := d.handle(request("12345678", 0x50, 0x00, 0x00, 0x00, 0x07))
	require.Len(t, reply, replyLen)
	assert.Equal(t, byte(flagRefused), reply[flagOffset])
}

func TestHandleWatchdogRangeCheck(t *testing.T) {
	d := &Device{password: "12345678"}
	// 5 ticks is below the 10 tick minimum
	reply := d.handle(request("12345678", 0x62, 0x05, 0x00, 0x01))
	assert.Equal(t, byte(flagRefused), reply[flagOffset])

	reply = d.handle(request("12345678", 0x62, 0x64, 0x00, 0x01))
	assert.Equal(t, byte(flagOK), reply[flagOffset])
	assert.Equal(t, uint16(100), d.wdtTicks)
	assert.Equal(t, byte(0x01), d.wdtOutputs)
}
