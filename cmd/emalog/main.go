// emalog polls an EMA-8314 module and writes the selected readings to
// a rotating, separator-delimited log file. Optional extras: a live web
// page, an InfluxDB sink, limit-breach mails and a gob reading history.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/marsmathis/ema8314"
)

func main() {
	configPath := flag.String("config", "emalog.json", "path to the config file")
	device := flag.String("device", "", "device host:port (overrides the config)")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if !*debug {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg, err := loadConfig(*configPath)
	if *device != "" {
		cfg.Device = *device
		err = nil
	}
	if err != nil {
		log.Fatal().Err(err).Msg("unusable config")
	}
	if cfg.Device == "" {
		log.Fatal().Msg("no device address given (config or -device)")
	}

	cl, err := ema8314.Dial(cfg.Device, ema8314.Config{
		LocalAddr: cfg.LocalAddr,
		Password:  cfg.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot reach device")
	}

	fw, err := cl.FirmwareVersion()
	if err != nil {
		log.Warn().Err(err).Msg("device not answering yet, logging will start once it does")
	} else {
		log.Info().Str("device", cfg.Device).Str("firmware", fw).Msg("connected")
	}

	run(cl, cfg, log)

	if err := cl.Close(); err != nil {
		log.Warn().Err(err).Msg("closing socket")
	}
	log.Info().Msg("socket closed")
}

func run(cl *ema8314.Client, cfg Config, log zerolog.Logger) {
	datalog := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
	}
	defer datalog.Close()

	var stats *statsWriter
	var history []Record
	if cfg.StatsDir != "" {
		history = loadStats(cfg.StatsDir, log)
		log.Info().Int("records", len(history)).Msg("loaded reading history")
		var err error
		stats, err = newStatsWriter(cfg.StatsDir, time.Now())
		if err != nil {
			log.Fatal().Err(err).Msg("cannot write stats")
		}
		defer stats.Close()
	}

	var influx *influxSink
	if cfg.Influx.enabled() {
		influx = newInfluxSink(cfg.Influx)
		defer influx.Close()
		log.Info().Str("url", cfg.Influx.URL).Msg("forwarding to influxdb")
	}

	var srv *server
	if cfg.Host != "" {
		srv = newServer(history, log)
		go srv.run(cfg.Host)
	}

	alerts := newAlerter(cfg, log)

	done := make(chan struct{})
	records := make(chan Record, 100)
	go poll(cl, cfg.interval(), records, done, log)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	for {
		select {
		case <-sig:
			close(done)
			for range records {
				// drain whatever the poller had in flight
			}
			return
		case rec, ok := <-records:
			if !ok {
				return
			}
			if _, err := datalog.Write([]byte(rec.Line(cfg.Separator, cfg.Columns) + "\n")); err != nil {
				log.Error().Err(err).Msg("failed to write data log")
			}
			if stats != nil {
				if err := stats.Append(rec); err != nil {
					log.Error().Err(err).Msg("failed to append history")
				}
			}
			if influx != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := influx.Write(ctx, rec); err != nil {
					log.Error().Err(err).Msg("failed to write influx point")
				}
				cancel()
			}
			if srv != nil {
				srv.broadcast(rec)
			}
			alerts.check(rec)
		}
	}
}
