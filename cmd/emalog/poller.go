package main

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/marsmathis/ema8314"
)

// probeInterval is how often the poller retries the firmware-version
// probe while the device is unreachable. Reading the firmware version
// is the cheapest request the device answers.
const probeInterval = 2 * time.Second

// poll reads the device at the configured interval and streams records
// until done is closed.
func poll(cl *ema8314.Client, interval time.Duration, out chan<- Record, done <-chan struct{}, log zerolog.Logger) {
	defer close(out)
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-done:
			return
		case <-tick.C:
		}

		rec, err := readDevice(cl)
		if err != nil {
			log.Warn().Err(err).Msg("poll failed, waiting for device")
			if !reconnect(cl, done, log) {
				return
			}
			continue
		}
		select {
		case out <- rec:
		case <-done:
			return
		}
	}
}

// readDevice takes one full snapshot: probe status first so broken
// channels can be reported as NaN, then temperatures and outputs.
func readDevice(cl *ema8314.Client) (Record, error) {
	rec := Record{Time: time.Now()}

	broken, err := cl.SensorStatus()
	if err != nil {
		return rec, err
	}
	rec.Broken = broken

	temps, err := cl.Temperatures()
	if err != nil {
		return rec, err
	}
	for i, t := range temps {
		rec.Units[i] = t.Unit.String()
		if broken[i] {
			rec.Temps[i] = float32(math.NaN())
			continue
		}
		rec.Temps[i] = t.Value
	}

	outputs, err := cl.Outputs()
	if err != nil {
		return rec, err
	}
	rec.Outputs = outputs
	return rec, nil
}

// reconnect probes the device until it answers again. Returns false if
// done was closed while waiting.
func reconnect(cl *ema8314.Client, done <-chan struct{}, log zerolog.Logger) bool {
	for {
		select {
		case <-done:
			return false
		case <-time.After(probeInterval):
		}
		if v, err := cl.FirmwareVersion(); err == nil {
			log.Info().Str("firmware", v).Msg("device answering again")
			return true
		}
		log.Debug().Msg("device still silent")
	}
}
