package main

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const statsPrefix = "ema_"

// statsWriter appends gob-encoded records to one file per daemon run
// inside the stats directory.
type statsWriter struct {
	file *os.File
	enc  *gob.Encoder
}

func newStatsWriter(dir string, when time.Time) (*statsWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create stats dir: %w", err)
	}
	name := filepath.Join(dir, statsPrefix+strconv.FormatInt(when.Unix(), 10))
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open stats file: %w", err)
	}
	return &statsWriter{file: f, enc: gob.NewEncoder(f)}, nil
}

func (s *statsWriter) Append(rec Record) error {
	return s.enc.Encode(rec)
}

func (s *statsWriter) Close() error {
	return s.file.Close()
}

// loadStats reads every record from all history files in dir. Files it
// cannot read are skipped with a log line; history is best effort.
func loadStats(dir string, log zerolog.Logger) []Record {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var events []Record
	for _, fi := range entries {
		name := fi.Name()
		if !strings.HasPrefix(name, statsPrefix) {
			continue
		}
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("skipping stats file")
			continue
		}
		dec := gob.NewDecoder(f)
		for {
			var e Record
			if err := dec.Decode(&e); err != nil {
				if !errors.Is(err, io.EOF) {
					log.Warn().Err(err).Str("file", name).Msg("truncated stats file")
				}
				break
			}
			events = append(events, e)
		}
		f.Close()
	}
	return events
}
