package main

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one poll of the device. Broken channels carry NaN in Temps.
type Record struct {
	Time    time.Time
	Temps   [4]float32
	Units   [4]string
	Broken  [4]bool
	Outputs [4]bool
}

// MarshalJSON nulls NaN temperatures; encoding/json refuses NaN and
// the page treats null as "no reading" anyway.
func (r Record) MarshalJSON() ([]byte, error) {
	type wire struct {
		Time    time.Time
		Temps   [4]*float32
		Units   [4]string
		Broken  [4]bool
		Outputs [4]bool
	}
	w := wire{Time: r.Time, Units: r.Units, Broken: r.Broken, Outputs: r.Outputs}
	for i := range r.Temps {
		if !math.IsNaN(float64(r.Temps[i])) {
			v := r.Temps[i]
			w.Temps[i] = &v
		}
	}
	return json.Marshal(w)
}

// Line renders one data log line: timestamp, then per channel the
// selected columns, joined by sep.
func (r Record) Line(sep string, cols Columns) string {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.RFC3339))
	for ch := 0; ch < 4; ch++ {
		if cols.temp(ch) {
			b.WriteString(sep)
			if r.Broken[ch] || math.IsNaN(float64(r.Temps[ch])) {
				b.WriteString("NaN")
			} else {
				b.WriteString(strconv.FormatFloat(float64(r.Temps[ch]), 'f', -1, 32))
			}
		}
		if cols.sensor(ch) {
			b.WriteString(sep)
			if r.Broken[ch] {
				b.WriteString("disconnected")
			} else {
				b.WriteString("connected")
			}
		}
		if cols.output(ch) {
			b.WriteString(sep)
			if r.Outputs[ch] {
				b.WriteString("on")
			} else {
				b.WriteString("off")
			}
		}
	}
	return b.String()
}
