package ema8314

// Temperature reads one channel. A broken sensor still yields a value;
// check SensorStatus to tell a real reading from garbage.
func (c *Client) Temperature(ch Channel) (Temperature, error) {
	if err := ch.valid(); err != nil {
		return Temperature{}, err
	}
	reply, err := c.roundTrip(opReadTemp, 0x00, 0x00, 0x00, byte(ch))
	if err != nil {
		return Temperature{}, err
	}
	t := Temperature{Value: float32At(reply, 4), Unit: Unit(reply[20])}
	if err := t.Unit.valid(); err != nil {
		return Temperature{}, err
	}
	return t, nil
}

// Temperatures reads all four channels in one request.
func (c *Client) Temperatures() ([4]Temperature, error) {
	var temps [4]Temperature
	reply, err := c.roundTrip(opReadAllTemps)
	if err != nil {
		return temps, err
	}
	for i := range temps {
		temps[i] = Temperature{
			Value: float32At(reply, 4+4*i),
			Unit:  Unit(reply[20+i]),
		}
		if err := temps[i].Unit.valid(); err != nil {
			return temps, err
		}
	}
	return temps, nil
}

// SetLimits writes the comparison thresholds of one channel.
func (c *Client) SetLimits(ch Channel, l Limits) error {
	if err := ch.valid(); err != nil {
		return err
	}
	if err := l.valid(); err != nil {
		return err
	}
	payload := make([]byte, 21)
	payload[3] = byte(ch)
	putFloat32(payload[4:], l.Low)
	putFloat32(payload[8:], l.High)
	payload[20] = byte(l.Unit)
	return c.exec(opSetLimits, payload...)
}

// Limits reads the comparison thresholds of one channel.
func (c *Client) Limits(ch Channel) (Limits, error) {
	if err := ch.valid(); err != nil {
		return Limits{}, err
	}
	reply, err := c.roundTrip(opReadLimits, 0x00, 0x00, 0x00, byte(ch))
	if err != nil {
		return Limits{}, err
	}
	l := Limits{
		Low:  float32At(reply, 4),
		High: float32At(reply, 8),
		Unit: Unit(reply[20]),
	}
	if err := l.Unit.valid(); err != nil {
		return Limits{}, err
	}
	return l, nil
}

// SetAllLimits writes the thresholds of all four channels. The device
// takes them two channels per request, so this is two commands on the
// wire; a failure on the second page leaves the first page applied.
func (c *Client) SetAllLimits(limits [4]Limits) error {
	for _, l := range limits {
		if err := l.valid(); err != nil {
			return err
		}
	}
	for page := byte(0); page < 2; page++ {
		a, b := limits[2*page], limits[2*page+1]
		payload := make([]byte, 22)
		payload[1] = page
		payload[3] = page
		putFloat32(payload[4:], a.Low)
		putFloat32(payload[8:], a.High)
		putFloat32(payload[12:], b.Low)
		putFloat32(payload[16:], b.High)
		payload[20] = byte(a.Unit)
		payload[21] = byte(b.Unit)
		if err := c.exec(opSetAllLimits, payload...); err != nil {
			return err
		}
	}
	return nil
}

// AllLimits reads the thresholds of all four channels (two requests,
// two channels per page).
func (c *Client) AllLimits() ([4]Limits, error) {
	var limits [4]Limits
	for page := byte(0); page < 2; page++ {
		reply, err := c.roundTrip(opReadAllLimits, 0x00, page, 0x00, page)
		if err != nil {
			return limits, err
		}
		for i := 0; i < 2; i++ {
			l := Limits{
				Low:  float32At(reply, 4+8*i),
				High: float32At(reply, 8+8*i),
				Unit: Unit(reply[20+i]),
			}
			if err := l.Unit.valid(); err != nil {
				return limits, err
			}
			limits[int(page)*2+i] = l
		}
	}
	return limits, nil
}
