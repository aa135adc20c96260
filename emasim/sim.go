// Package emasim is a protocol-level simulator of the EMA-8314 module.
// It answers the same UDP frames the real hardware does and is used by
// the test suite and by cmd/emasim for development without a device.
package emasim

import (
	"encoding/binary"
	"fmt"
	"math"
	"net"
	"sync"
)

const (
	cardID      = "EMA8314"
	headerLen   = 16
	replyLen    = 34
	flagOffset  = 32
	flagOK      = 0x63
	flagRefused = 0x00
)

type channel struct {
	temp    float32
	unit    byte // 1=C 2=F
	low     float32
	high    float32
	limUnit byte
	sensor  byte // 1=Pt-1000 2=Pt-100
	broken  bool
	mode    byte // control mode 0-3
}

// Device is a simulated module bound to a UDP socket.
type Device struct {
	conn *net.UDPConn
	done chan struct{}
	wg   sync.WaitGroup

	mu             sync.Mutex
	password       string
	firmware       [2]byte
	channels       [4]channel
	outputs        byte
	outputModes    byte
	controlMask    byte
	controlEnabled bool
	wdtTicks       uint16
	wdtOutputs     byte
	wdtEnabled     bool
	port           uint16
	ip             net.IP
	reboots        int
	failNext       byte
	dropNext       bool
}

// Listen starts a simulator on addr ("127.0.0.1:0" is typical in tests).
func Listen(addr string) (*Device, error) {
	laddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("emasim: resolve %q: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, fmt.Errorf("emasim: listen %q: %w", addr, err)
	}
	d := &Device{
		conn:     conn,
		done:     make(chan struct{}),
		password: "12345678",
		firmware: [2]byte{1, 0},
	}
	for i := range d.channels {
		d.channels[i] = channel{
			temp: 21.5, unit: 1,
			low: 10, high: 30, limUnit: 1,
			sensor: 2,
		}
	}
	d.wdtTicks = 100
	d.wg.Add(1)
	go d.serve()
	return d, nil
}

// Addr is the host:port the simulator answers on.
func (d *Device) Addr() string {
	return d.conn.LocalAddr().String()
}

// Close stops the simulator.
func (d *Device) Close() error {
	close(d.done)
	err := d.conn.Close()
	d.wg.Wait()
	return err
}

func (d *Device) serve() {
	defer d.wg.Done()
	buf := make([]byte, 64)
	for {
		n, raddr, err := d.conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-d.done:
				return
			default:
				continue
			}
		}
		if reply := d.handle(buf[:n]); reply != nil {
			d.conn.WriteToUDP(reply, raddr)
		}
	}
}

// handle dispatches one request frame. nil means no reply (wrong card
// id, or a forced drop).
func (d *Device) handle(req []byte) []byte {
	if len(req) < headerLen || string(req[:len(cardID)]) != cardID {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dropNext {
		d.dropNext = false
		return nil
	}

	reply := make([]byte, replyLen)
	reply[flagOffset] = flagOK

	if d.failNext != flagOK && d.failNext != 0 {
		reply[flagOffset] = d.failNext
		d.failNext = 0
		return reply
	}

	var pw [8]byte
	copy(pw[:], d.password)
	if string(req[7:15]) != string(pw[:]) {
		reply[flagOffset] = flagRefused
		return reply
	}

	op := req[15]
	// Pad the payload so short or malformed requests cannot index past
	// the end of the datagram.
	var pbuf [24]byte
	copy(pbuf[:], req[headerLen:])
	p := pbuf[:]
	switch op {
	case 0x02: // reboot
		d.reboots++
	case 0x03: // change port
		d.port = binary.LittleEndian.Uint16(p)
	case 0x04: // change password
		d.password = trimNul(p[:8])
	case 0x05: // reset password
		d.password = "12345678"
	case 0x06: // change ip
		d.ip = net.IPv4(p[0], p[1], p[2], p[3])
	case 0x07: // firmware version
		reply[1], reply[2] = d.firmware[0], d.firmware[1]
	case 0x30: // set outputs
		d.outputs = p[1] & 0x0f
	case 0x31: // read outputs
		reply[1] = d.outputs
	case 0x32: // set output modes
		d.outputModes = p[1] & 0x0f
	case 0x33: // read output modes
		reply[1] = d.outputModes
	case 0x50: // read one temperature
		ch := p[3]
		if ch > 3 {
			reply[flagOffset] = flagRefused
			break
		}
		putF32(reply[4:], d.channels[ch].temp)
		reply[20] = d.channels[ch].unit
	case 0x51: // read all temperatures
		for i, c := range d.channels {
			putF32(reply[4+4*i:], c.temp)
			reply[20+i] = c.unit
		}
	case 0x52: // set one limit pair
		ch := p[3]
		if ch > 3 {
			reply[flagOffset] = flagRefused
			break
		}
		d.channels[ch].low = f32(p[4:])
		d.channels[ch].high = f32(p[8:])
		d.channels[ch].limUnit = p[20]
	case 0x53: // read one limit pair
		ch := p[3]
		if ch > 3 {
			reply[flagOffset] = flagRefused
			break
		}
		putF32(reply[4:], d.channels[ch].low)
		putF32(reply[8:], d.channels[ch].high)
		reply[20] = d.channels[ch].limUnit
	case 0x54: // set limits, two channels per page
		page := p[1]
		if page > 1 {
			reply[flagOffset] = flagRefused
			break
		}
		for i := byte(0); i < 2; i++ {
			c := &d.channels[2*page+i]
			c.low = f32(p[4+8*i:])
			c.high = f32(p[8+8*i:])
			c.limUnit = p[20+i]
		}
	case 0x55: // read limits, two channels per page
		page := p[1]
		if page > 1 {
			reply[flagOffset] = flagRefused
			break
		}
		for i := byte(0); i < 2; i++ {
			c := d.channels[2*page+i]
			putF32(reply[4+8*i:], c.low)
			putF32(reply[8+8*i:], c.high)
			reply[20+i] = c.limUnit
		}
	case 0x56: // set one sensor type
		ch := p[3]
		if ch > 3 {
			reply[flagOffset] = flagRefused
			break
		}
		d.channels[ch].sensor = p[20]
	case 0x57: // read one sensor type
		ch := p[3]
		if ch > 3 {
			reply[flagOffset] = flagRefused
			break
		}
		reply[20] = d.channels[ch].sensor
	case 0x58: // set all sensor types
		for i := range d.channels {
			d.channels[i].sensor = p[20+i]
		}
	case 0x59: // read all sensor types
		for i, c := range d.channels {
			reply[20+i] = c.sensor
		}
	case 0x5a: // sensor status bitmask, 1=broken
		var m byte
		for i, c := range d.channels {
			if c.broken {
				m |= 1 << i
			}
		}
		reply[24] = m
	case 0x5b: // control status, 1=off 2=on
		reply[24] = onOff(d.controlEnabled)
	case 0x5c:
		d.controlEnabled = true
	case 0x5d:
		d.controlEnabled = false
	case 0x5e:
		d.controlMask = p[1] & 0x0f
	case 0x5f:
		reply[1] = d.controlMask
	case 0x60:
		d.wdtEnabled = true
	case 0x61:
		d.wdtEnabled = false
	case 0x62: // set watchdog
		ticks := binary.LittleEndian.Uint16(p)
		if ticks < 10 || ticks > 10000 {
			reply[flagOffset] = flagRefused
			break
		}
		d.wdtTicks = ticks
		d.wdtOutputs = p[2] & 0x0f
	case 0x63: // read watchdog
		binary.LittleEndian.PutUint16(reply, d.wdtTicks)
		reply[2] = d.wdtOutputs
		reply[3] = onOff(d.wdtEnabled)
	case 0x64: // set control mode
		ch, mode := p[1], p[2]
		if ch > 3 || mode > 3 {
			reply[flagOffset] = flagRefused
			break
		}
		d.channels[ch].mode = mode
	case 0x65: // read control mode
		ch := p[1]
		if ch > 3 {
			reply[flagOffset] = flagRefused
			break
		}
		reply[2] = d.channels[ch].mode
	default:
		reply[flagOffset] = flagRefused
	}
	return reply
}

func onOff(on bool) byte {
	if on {
		return 2
	}
	return 1
}

func trimNul(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func f32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
