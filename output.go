package ema8314

// SetOutputs switches the four outputs directly. Only outputs in
// general purpose mode react; outputs handed to temperature control
// ignore this.
func (c *Client) SetOutputs(states [4]bool) error {
	return c.exec(opSetOutputs, 0x00, packMask(states))
}

// Outputs reads the current state of the four outputs.
func (c *Client) Outputs() ([4]bool, error) {
	reply, err := c.roundTrip(opReadOutputs)
	if err != nil {
		return [4]bool{}, err
	}
	return unpackMask(reply[1]), nil
}

// SetOutputModes assigns each output to general purpose or temperature
// control use.
func (c *Client) SetOutputModes(modes [4]OutputMode) error {
	var states [4]bool
	for i, m := range modes {
		states[i] = m == TemperatureControl
	}
	return c.exec(opSetOutputModes, 0x00, packMask(states))
}

// OutputModes reads the mode of each output.
func (c *Client) OutputModes() ([4]OutputMode, error) {
	reply, err := c.roundTrip(opReadOutputMode)
	if err != nil {
		return [4]OutputMode{}, err
	}
	var modes [4]OutputMode
	for i, on := range unpackMask(reply[1]) {
		if on {
			modes[i] = TemperatureControl
		}
	}
	return modes, nil
}
