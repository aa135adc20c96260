package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emalog.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{"Device": "192.168.1.40:6936"}`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.40:6936", cfg.Device)
	assert.Equal(t, "\t", cfg.Separator)
	assert.Equal(t, time.Second, cfg.interval())
	assert.True(t, cfg.Columns.temp(0))
	assert.False(t, cfg.Columns.sensor(0))
	assert.Equal(t, 60, cfg.Alerts.CooldownMin)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"Device": "10.0.0.2:6936",
		"IntervalSec": 0.5,
		"Separator": ",",
		"Columns": {"AllTemps": false, "Temps": [true, false, false, false], "AllOutputs": true},
		"Alerts": {"CooldownMin": 5, "Rules": [{"Channel": 1, "Low": -10, "High": 40}]}
	}`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.interval())
	assert.Equal(t, ",", cfg.Separator)
	assert.True(t, cfg.Columns.temp(0))
	assert.False(t, cfg.Columns.temp(1))
	assert.True(t, cfg.Columns.output(3))
	require.Len(t, cfg.Alerts.Rules, 1)
}

func TestLoadConfigRequiresDevice(t *testing.T) {
	path := writeConfig(t, `{}`)
	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigRejectsBadRule(t *testing.T) {
	path := writeConfig(t, `{"Device": "d:1", "Alerts": {"Rules": [{"Channel": 9}]}}`)
	_, err := loadConfig(path)
	require.Error(t, err)

	path = writeConfig(t, `{"Device": "d:1", "Alerts": {"Rules": [{"Channel": 0, "Low": 5, "High": 1}]}}`)
	_, err = loadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
