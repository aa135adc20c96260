package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marsmathis/ema8314"
)

func TestParseChannel(t *testing.T) {
	ch, err := parseChannel("2")
	require.NoError(t, err)
	assert.Equal(t, ema8314.Channel2, ch)

	_, err = parseChannel("4")
	assert.Error(t, err)
	_, err = parseChannel("x")
	assert.Error(t, err)
}

func TestParseStates(t *testing.T) {
	states, err := parseStates([]string{"1", "0", "on", "off"})
	require.NoError(t, err)
	assert.Equal(t, [4]bool{true, false, true, false}, states)

	_, err = parseStates([]string{"1", "0", "2", "0"})
	assert.Error(t, err)
}

func TestParseUnit(t *testing.T) {
	u, err := parseUnit("F")
	require.NoError(t, err)
	assert.Equal(t, ema8314.Fahrenheit, u)

	_, err = parseUnit("K")
	assert.Error(t, err)
}

func TestDialRequiresDevice(t *testing.T) {
	deviceAddr = ""
	_, err := dial()
	require.Error(t, err)
}
