package ema8314

// The on-device comparison drives outputs from temperature limits.
// The device encodes its enabled flags as 1=off, 2=on.

// ControlEnabled reports whether temperature comparison is running.
func (c *Client) ControlEnabled() (bool, error) {
	reply, err := c.roundTrip(opControlStatus)
	if err != nil {
		return false, err
	}
	return reply[24]-1 == 1, nil
}

// EnableControl starts temperature comparison on the device.
func (c *Client) EnableControl() error {
	return c.exec(opControlEnable)
}

// DisableControl stops temperature comparison.
func (c *Client) DisableControl() error {
	return c.exec(opControlDisable)
}

// SetControlMask masks channels out of the comparison (true = masked).
func (c *Client) SetControlMask(masked [4]bool) error {
	return c.exec(opSetControlMask, 0x00, packMask(masked))
}

// ControlMask reads the comparison mask.
func (c *Client) ControlMask() ([4]bool, error) {
	reply, err := c.roundTrip(opControlMask)
	if err != nil {
		return [4]bool{}, err
	}
	return unpackMask(reply[1]), nil
}

// SetControlMode sets how channel ch drives OUTn when comparing.
func (c *Client) SetControlMode(ch Channel, mode ControlMode) error {
	if err := ch.valid(); err != nil {
		return err
	}
	if err := mode.valid(); err != nil {
		return err
	}
	return c.exec(opSetControlMode, 0x00, byte(ch), byte(mode))
}

// ControlMode reads the comparison mode of one channel.
func (c *Client) ControlMode(ch Channel) (ControlMode, error) {
	if err := ch.valid(); err != nil {
		return 0, err
	}
	reply, err := c.roundTrip(opControlMode, 0x00, byte(ch))
	if err != nil {
		return 0, err
	}
	mode := ControlMode(reply[2])
	if err := mode.valid(); err != nil {
		return 0, err
	}
	return mode, nil
}
