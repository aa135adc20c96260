package main

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func testAlerter(rules []AlertRule, cooldown time.Duration) (*alerter, *[]string) {
	sent := &[]string{}
	a := &alerter{
		rules:    rules,
		cooldown: cooldown,
		log:      zerolog.Nop(),
		send: func(subject, body string) error {
			*sent = append(*sent, subject)
			return nil
		},
	}
	return a, sent
}

func recAt(when time.Time, temp float32) Record {
	return Record{
		Time:  when,
		Temps: [4]float32{temp, 20, 20, 20},
		Units: [4]string{"C", "C", "C", "C"},
	}
}

func TestAlertOnHighReading(t *testing.T) {
	a, sent := testAlerter([]AlertRule{{Channel: 0, Low: 0, High: 30}}, time.Hour)
	a.check(recAt(time.Now(), 35))
	assert.Len(t, *sent, 1)
}

func TestAlertOnLowReading(t *testing.T) {
	a, sent := testAlerter([]AlertRule{{Channel: 0, Low: 5, High: 30}}, time.Hour)
	a.check(recAt(time.Now(), -2))
	assert.Len(t, *sent, 1)
}

func TestAlertOnBrokenSensor(t *testing.T) {
	a, sent := testAlerter([]AlertRule{{Channel: 1, Low: 0, High: 100}}, time.Hour)
	rec := recAt(time.Now(), 20)
	rec.Broken[1] = true
	rec.Temps[1] = float32(math.NaN())
	a.check(rec)
	assert.Len(t, *sent, 1)
}

func TestNoAlertInsideLimits(t *testing.T) {
	a, sent := testAlerter([]AlertRule{{Channel: 0, Low: 0, High: 30}}, time.Hour)
	a.check(recAt(time.Now(), 22))
	assert.Empty(t, *sent)
}

func TestCooldownSuppressesRepeats(t *testing.T) {
	a, sent := testAlerter([]AlertRule{{Channel: 0, Low: 0, High: 30}}, time.Hour)
	start := time.Now()
	a.check(recAt(start, 35))
	a.check(recAt(start.Add(time.Minute), 36))
	a.check(recAt(start.Add(30*time.Minute), 37))
	assert.Len(t, *sent, 1)

	// Past the cooldown it fires again.
	a.check(recAt(start.Add(61*time.Minute), 38))
	assert.Len(t, *sent, 2)
}

func TestCooldownPerChannel(t *testing.T) {
	a, sent := testAlerter([]AlertRule{
		{Channel: 0, Low: 0, High: 30},
		{Channel: 2, Low: 0, High: 30},
	}, time.Hour)
	rec := recAt(time.Now(), 35)
	rec.Temps[2] = 40
	a.check(rec)
	assert.Len(t, *sent, 2)
}
