package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w, err := newStatsWriter(dir, time.Now())
	require.NoError(t, err)

	want := []Record{
		{Time: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), Temps: [4]float32{1, 2, 3, 4}},
		{Time: time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC), Temps: [4]float32{5, 6, 7, 8}, Broken: [4]bool{true, false, false, false}},
	}
	for _, rec := range want {
		require.NoError(t, w.Append(rec))
	}
	require.NoError(t, w.Close())

	got := loadStats(dir, zerolog.Nop())
	require.Len(t, got, 2)
	assert.Equal(t, want[0].Temps, got[0].Temps)
	assert.Equal(t, want[1].Broken, got[1].Broken)
	assert.True(t, got[0].Time.Equal(want[0].Time))
}

func TestLoadStatsIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))

	w, err := newStatsWriter(dir, time.Now())
	require.NoError(t, err)
	require.NoError(t, w.Append(Record{Time: time.Now()}))
	require.NoError(t, w.Close())

	got := loadStats(dir, zerolog.Nop())
	assert.Len(t, got, 1)
}

func TestLoadStatsMissingDir(t *testing.T) {
	got := loadStats(filepath.Join(t.TempDir(), "absent"), zerolog.Nop())
	assert.Nil(t, got)
}
