package main

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() Record {
	return Record{
		Time:    time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Temps:   [4]float32{21.5, float32(math.NaN()), 19, 23.25},
		Units:   [4]string{"C", "C", "C", "F"},
		Broken:  [4]bool{false, true, false, false},
		Outputs: [4]bool{true, false, false, true},
	}
}

func TestLineAllTemps(t *testing.T) {
	rec := sampleRecord()
	line := rec.Line("\t", Columns{AllTemps: true})
	fields := strings.Split(line, "\t")
	require.Len(t, fields, 5)
	assert.Equal(t, "2026-03-14T09:26:53Z", fields[0])
	assert.Equal(t, "21.5", fields[1])
	assert.Equal(t, "NaN", fields[2])
	assert.Equal(t, "19", fields[3])
	assert.Equal(t, "23.25", fields[4])
}

func TestLinePerChannelSwitches(t *testing.T) {
	rec := sampleRecord()
	cols := Columns{
		Temps:   [4]bool{true, false, false, false},
		Sensors: [4]bool{false, true, false, false},
		Outputs: [4]bool{false, false, false, true},
	}
	line := rec.Line(";", cols)
	fields := strings.Split(line, ";")
	require.Len(t, fields, 4)
	assert.Equal(t, "21.5", fields[1])
	assert.Equal(t, "disconnected", fields[2])
	assert.Equal(t, "on", fields[3])
}

func TestLineAllColumns(t *testing.T) {
	rec := sampleRecord()
	cols := Columns{AllTemps: true, AllSensors: true, AllOutputs: true}
	fields := strings.Split(rec.Line("\t", cols), "\t")
	// timestamp + 3 columns per channel
	require.Len(t, fields, 13)
	assert.Equal(t, []string{"21.5", "connected", "on"}, fields[1:4])
	assert.Equal(t, []string{"NaN", "disconnected", "off"}, fields[4:7])
}

func TestRecordJSONNullsNaN(t *testing.T) {
	data, err := json.Marshal(sampleRecord())
	require.NoError(t, err)

	var decoded struct {
		Temps  [4]*float32
		Broken [4]bool
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Temps[0])
	assert.Equal(t, float32(21.5), *decoded.Temps[0])
	assert.Nil(t, decoded.Temps[1])
	assert.True(t, decoded.Broken[1])
}
