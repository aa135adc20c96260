package ema8314

// sensorPad is the reserved block the sensor type commands carry.
const sensorPad = 16

// SetSensorType selects the RTD probe type of one channel.
func (c *Client) SetSensorType(ch Channel, st SensorType) error {
	if err := ch.valid(); err != nil {
		return err
	}
	if err := st.valid(); err != nil {
		return err
	}
	payload := make([]byte, 4+sensorPad+1)
	payload[3] = byte(ch)
	payload[4+sensorPad] = byte(st)
	return c.exec(opSetSensorType, payload...)
}

// SensorType reads the probe type of one channel.
func (c *Client) SensorType(ch Channel) (SensorType, error) {
	if err := ch.valid(); err != nil {
		return 0, err
	}
	reply, err := c.roundTrip(opReadSensorType, 0x00, 0x00, 0x00, byte(ch))
	if err != nil {
		return 0, err
	}
	st := SensorType(reply[20])
	if err := st.valid(); err != nil {
		return 0, err
	}
	return st, nil
}

// SetSensorTypes selects the probe type of all four channels at once.
func (c *Client) SetSensorTypes(types [4]SensorType) error {
	for _, st := range types {
		if err := st.valid(); err != nil {
			return err
		}
	}
	payload := make([]byte, 4+sensorPad+4)
	for i, st := range types {
		payload[4+sensorPad+i] = byte(st)
	}
	return c.exec(opSetSensorTypes, payload...)
}

// SensorTypes reads the probe type of all four channels.
func (c *Client) SensorTypes() ([4]SensorType, error) {
	var types [4]SensorType
	reply, err := c.roundTrip(opReadSensors)
	if err != nil {
		return types, err
	}
	for i := range types {
		types[i] = SensorType(reply[20+i])
		if err := types[i].valid(); err != nil {
			return types, err
		}
	}
	return types, nil
}

// SensorStatus reports which channels have a broken or missing probe
// (true = broken).
func (c *Client) SensorStatus() ([4]bool, error) {
	reply, err := c.roundTrip(opSensorStatus)
	if err != nil {
		return [4]bool{}, err
	}
	return unpackMask(reply[24]), nil
}
