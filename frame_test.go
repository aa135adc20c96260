package ema8314

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameHeader(t *testing.T) {
	b := frame("12345678", opReboot)
	require.Len(t, b, 16)
	assert.Equal(t, []byte("EMA8314"), b[:7])
	assert.Equal(t, []byte("12345678"), b[7:15])
	assert.Equal(t, byte(0x02), b[15])
}

func TestFramePadsShortPassword(t *testing.T) {
	b := frame("abc", opFirmware)
	assert.Equal(t, []byte{'a', 'b', 'c', 0, 0, 0, 0, 0}, b[7:15])
}

func TestFrameGoldenBytes(t *testing.T) {
	// Byte-for-byte against frames captured from the device protocol.
	cases := []struct {
		name    string
		op      byte
		payload []byte
		want    []byte
	}{
		{
			name: "change port 6936",
			op:   opSetPort, payload: []byte{0x18, 0x1b},
			want: append([]byte("EMA831412345678"), 0x03, 0x18, 0x1b),
		},
		{
			name: "read temperature channel 2",
			op:   opReadTemp, payload: []byte{0, 0, 0, 2},
			want: append([]byte("EMA831412345678"), 0x50, 0, 0, 0, 2),
		},
		{
			name: "set watchdog 100 ticks outputs 0+3",
			op:   opWdtSet, payload: []byte{0x64, 0x00, 0x09},
			want: append([]byte("EMA831412345678"), 0x62, 0x64, 0x00, 0x09),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, frame("12345678", tc.op, tc.payload...))
		})
	}
}

func TestCheckReply(t *testing.T) {
	good := make([]byte, replyLen)
	good[flagOffset] = flagOK
	require.NoError(t, checkReply(opReboot, good))

	short := make([]byte, 10)
	require.Error(t, checkReply(opReboot, short))

	bad := make([]byte, replyLen)
	bad[flagOffset] = 0x11
	err := checkReply(opReadTemp, bad)
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, byte(0x11), serr.Code)
	assert.Equal(t, "read temperature", serr.Op)
}

func TestMaskRoundTrip(t *testing.T) {
	states := [4]bool{true, false, true, true}
	m := packMask(states)
	assert.Equal(t, byte(0x0d), m)
	assert.Equal(t, states, unpackMask(m))
}

func TestFloat32LittleEndian(t *testing.T) {
	b := make([]byte, 4)
	putFloat32(b, 21.5)
	// 21.5 = 0x41AC0000
	assert.Equal(t, []byte{0x00, 0x00, 0xac, 0x41}, b)
	padded := append(make([]byte, 4), b...)
	assert.Equal(t, float32(21.5), float32At(padded, 4))
}

func TestWatchdogTicks(t *testing.T) {
	w := Watchdog{Wait: 10 * time.Second}
	ticks, err := w.ticks()
	require.NoError(t, err)
	assert.Equal(t, uint16(100), ticks)

	_, err = Watchdog{Wait: 500 * time.Millisecond}.ticks()
	assert.Error(t, err)
	_, err = Watchdog{Wait: 20 * time.Minute}.ticks()
	assert.Error(t, err)
}

func TestTypeValidation(t *testing.T) {
	assert.Error(t, Channel(4).valid())
	assert.NoError(t, Channel3.valid())
	assert.Error(t, Unit(0).valid())
	assert.Error(t, SensorType(3).valid())
	assert.Error(t, ControlMode(4).valid())
	assert.Error(t, Limits{Low: 30, High: 10, Unit: Celsius}.valid())
	assert.NoError(t, Limits{Low: 10, High: 30, Unit: Fahrenheit}.valid())
}

func TestCheckPassword(t *testing.T) {
	assert.NoError(t, checkPassword("12345678"))
	assert.Error(t, checkPassword("123456789"))
	assert.Error(t, checkPassword("pass\x01"))
}
