package ema8314

import (
	"encoding/binary"
	"fmt"
	"net"
)

// Reboot restarts the module. The socket stays open; the module keeps
// its address, so the client can be reused once it is back up.
func (c *Client) Reboot() error {
	return c.exec(opReboot)
}

// SetPort changes the UDP port the module listens on. Takes effect on
// the device side immediately; the caller must Dial again to keep
// talking to it.
func (c *Client) SetPort(port uint16) error {
	var p [2]byte
	binary.LittleEndian.PutUint16(p[:], port)
	return c.exec(opSetPort, p[:]...)
}

// SetPassword changes the device password. On success the client
// switches to the new password for subsequent requests.
func (c *Client) SetPassword(password string) error {
	if err := checkPassword(password); err != nil {
		return err
	}
	var pw [passwordLen]byte
	copy(pw[:], password)
	if err := c.exec(opSetPassword, pw[:]...); err != nil {
		return err
	}
	c.mu.Lock()
	c.password = password
	c.mu.Unlock()
	return nil
}

// ResetPassword restores the factory password and switches the client
// to it.
func (c *Client) ResetPassword() error {
	if err := c.exec(opResetPassword); err != nil {
		return err
	}
	c.mu.Lock()
	c.password = DefaultPassword
	c.mu.Unlock()
	return nil
}

// SetIP changes the module's IPv4 address. As with SetPort, the client
// must be re-dialed afterwards.
func (c *Client) SetIP(ip net.IP) error {
	v4 := ip.To4()
	if v4 == nil {
		return fmt.Errorf("ema8314: %s is not an IPv4 address", ip)
	}
	return c.exec(opSetIP, v4...)
}

// FirmwareVersion reads the firmware version as "major.minor".
// Also the cheapest liveness probe the protocol offers.
func (c *Client) FirmwareVersion() (string, error) {
	reply, err := c.roundTrip(opFirmware)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%d", reply[1], reply[2]), nil
}
