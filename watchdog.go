package ema8314

import (
	"encoding/binary"
	"time"
)

// EnableWatchdog arms the communication watchdog.
func (c *Client) EnableWatchdog() error {
	return c.exec(opWdtEnable)
}

// DisableWatchdog disarms the communication watchdog.
func (c *Client) DisableWatchdog() error {
	return c.exec(opWdtDisable)
}

// SetWatchdog writes the wait time and the outputs the timer may force.
// Enabled is ignored here; arm the timer with EnableWatchdog.
func (c *Client) SetWatchdog(w Watchdog) error {
	ticks, err := w.ticks()
	if err != nil {
		return err
	}
	payload := make([]byte, 3)
	binary.LittleEndian.PutUint16(payload, ticks)
	payload[2] = packMask(w.Outputs)
	return c.exec(opWdtSet, payload...)
}

// Watchdog reads the full watchdog configuration including whether the
// timer is armed.
func (c *Client) Watchdog() (Watchdog, error) {
	reply, err := c.roundTrip(opWdtRead)
	if err != nil {
		return Watchdog{}, err
	}
	return Watchdog{
		Wait:    time.Duration(uint16At(reply, 0)) * watchdogTick,
		Outputs: unpackMask(reply[2]),
		Enabled: reply[3]-1 == 1,
	}, nil
}
