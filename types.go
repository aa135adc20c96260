package ema8314

import (
	"fmt"
	"time"
)

// Channel selects one of the four measurement channels.
type Channel uint8

const (
	Channel0 Channel = iota
	Channel1
	Channel2
	Channel3

	// NumChannels is the number of measurement channels on the module.
	NumChannels = 4
)

func (c Channel) valid() error {
	if c >= NumChannels {
		return fmt.Errorf("ema8314: channel %d out of range (0-3)", c)
	}
	return nil
}

// Unit is the temperature unit a channel reports in.
type Unit byte

const (
	Celsius    Unit = 0x01
	Fahrenheit Unit = 0x02
)

func (u Unit) String() string {
	switch u {
	case Celsius:
		return "C"
	case Fahrenheit:
		return "F"
	}
	return "unknown"
}

func (u Unit) valid() error {
	if u != Celsius && u != Fahrenheit {
		return fmt.Errorf("ema8314: invalid temperature unit 0x%02x", byte(u))
	}
	return nil
}

// SensorType is the RTD probe type wired to a channel.
type SensorType byte

const (
	Pt1000 SensorType = 0x01
	Pt100  SensorType = 0x02
)

func (s SensorType) String() string {
	switch s {
	case Pt1000:
		return "Pt-1000"
	case Pt100:
		return "Pt-100"
	}
	return "unknown"
}

func (s SensorType) valid() error {
	if s != Pt1000 && s != Pt100 {
		return fmt.Errorf("ema8314: invalid sensor type 0x%02x", byte(s))
	}
	return nil
}

// ControlMode decides how a channel drives its output when temperature
// comparison is enabled. Channel n always drives OUTn.
type ControlMode byte

const (
	// OverHighOn switches the output on above the high limit and off
	// below the low limit.
	OverHighOn ControlMode = iota
	// OverHighOff switches the output off above the high limit and on
	// below the low limit.
	OverHighOff
	// WithinOn keeps the output on while the reading is between the
	// limits and off outside them.
	WithinOn
	// WithinOff keeps the output off while the reading is between the
	// limits and on outside them.
	WithinOff
)

func (m ControlMode) String() string {
	switch m {
	case OverHighOn:
		return "on over high, off under low"
	case OverHighOff:
		return "off over high, on under low"
	case WithinOn:
		return "on within limits"
	case WithinOff:
		return "off within limits"
	}
	return "unknown"
}

func (m ControlMode) valid() error {
	if m > WithinOff {
		return fmt.Errorf("ema8314: invalid control mode %d", m)
	}
	return nil
}

// OutputMode selects what an output pin is used for.
type OutputMode byte

const (
	// GeneralPurpose lets the host switch the output directly.
	GeneralPurpose OutputMode = iota
	// TemperatureControl hands the output to the on-board comparison.
	TemperatureControl
)

func (m OutputMode) String() string {
	if m == TemperatureControl {
		return "temperature control"
	}
	return "general purpose"
}

// Temperature is a single channel reading.
type Temperature struct {
	Value float32
	Unit  Unit
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.1f°%s", t.Value, t.Unit)
}

// Limits are the low/high comparison thresholds of a channel.
type Limits struct {
	Low  float32
	High float32
	Unit Unit
}

func (l Limits) valid() error {
	if l.Low > l.High {
		return fmt.Errorf("ema8314: limits low %.1f above high %.1f", l.Low, l.High)
	}
	return l.Unit.valid()
}

// Watchdog ticks are 100 ms; the device accepts 10 to 10000 ticks.
const (
	watchdogTick = 100 * time.Millisecond
	WatchdogMin  = 10 * watchdogTick
	WatchdogMax  = 10000 * watchdogTick
)

// Watchdog is the communication watchdog configuration. When the host
// stops talking for Wait, the device forces the enabled outputs.
type Watchdog struct {
	Outputs [4]bool       // outputs the timer is allowed to drive
	Wait    time.Duration // rounded down to 100 ms ticks
	Enabled bool          // only reported by reads; use EnableWatchdog to change
}

func (w Watchdog) ticks() (uint16, error) {
	t := w.Wait / watchdogTick
	if w.Wait < WatchdogMin || w.Wait > WatchdogMax {
		return 0, fmt.Errorf("ema8314: watchdog wait %s out of range (%s-%s)", w.Wait, WatchdogMin, WatchdogMax)
	}
	return uint16(t), nil
}
