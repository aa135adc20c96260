package emasim

import "net"

// Test and development hooks. All are safe to call while the simulator
// is serving.

// SetTemperature sets the reading of one channel.
func (d *Device) SetTemperature(ch int, v float32) {
	d.mu.Lock()
	d.channels[ch].temp = v
	d.mu.Unlock()
}

// SetUnit sets the reporting unit byte of one channel (1=C, 2=F).
func (d *Device) SetUnit(ch int, unit byte) {
	d.mu.Lock()
	d.channels[ch].unit = unit
	d.mu.Unlock()
}

// SetBroken marks a channel's probe as broken.
func (d *Device) SetBroken(ch int, broken bool) {
	d.mu.Lock()
	d.channels[ch].broken = broken
	d.mu.Unlock()
}

// SetFirmware sets the reported firmware version.
func (d *Device) SetFirmware(major, minor byte) {
	d.mu.Lock()
	d.firmware = [2]byte{major, minor}
	d.mu.Unlock()
}

// FailNext makes the next request come back with the given status flag.
func (d *Device) FailNext(code byte) {
	d.mu.Lock()
	d.failNext = code
	d.mu.Unlock()
}

// DropNext swallows the next request without replying.
func (d *Device) DropNext() {
	d.mu.Lock()
	d.dropNext = true
	d.mu.Unlock()
}

// Password reports the currently configured password.
func (d *Device) Password() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.password
}

// Outputs reports the output bitmask.
func (d *Device) Outputs() byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.outputs
}

// Reboots counts received reboot commands.
func (d *Device) Reboots() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reboots
}

// Port reports the last port written by a change-port command.
func (d *Device) Port() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.port
}

// IP reports the last address written by a change-ip command.
func (d *Device) IP() net.IP {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ip
}
