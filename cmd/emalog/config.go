package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config is the emalog configuration, loaded from a JSON file.
// Everything except the device address has a usable default.
type Config struct {
	Device    string // device host:port, required
	LocalAddr string // optional bind address for the UDP socket
	Password  string // device password, default factory password

	IntervalSec float64 // seconds between polls
	Separator   string  // column separator in the data log

	Columns Columns

	Log      LogFileConfig
	StatsDir string // gob history directory, empty disables
	Host     string // http listen address for the live page, empty disables

	Mailgun MailgunConfig
	Alerts  AlertConfig

	Influx InfluxConfig
}

// Columns selects which readings end up in the data log, either for
// all channels at once or per channel.
type Columns struct {
	AllTemps   bool
	Temps      [4]bool
	AllSensors bool
	Sensors    [4]bool
	AllOutputs bool
	Outputs    [4]bool
}

// temp/sensor/output report whether that column is on for a channel.
func (c Columns) temp(ch int) bool   { return c.AllTemps || c.Temps[ch] }
func (c Columns) sensor(ch int) bool { return c.AllSensors || c.Sensors[ch] }
func (c Columns) output(ch int) bool { return c.AllOutputs || c.Outputs[ch] }

// LogFileConfig is the rotating data log destination.
type LogFileConfig struct {
	File       string // path of the active log file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// MailgunConfig is the settings needed to use Mailgun for alert mails.
type MailgunConfig struct {
	APIKey     string
	Domain     string
	Sender     string
	Recipients []string
}

func (mc MailgunConfig) enabled() bool {
	return mc.APIKey != "" && mc.Domain != "" && len(mc.Recipients) > 0
}

// AlertRule bounds one channel; readings outside [Low, High] or a
// broken probe trigger a mail.
type AlertRule struct {
	Channel int
	Low     float32
	High    float32
}

// AlertConfig is the alerting setup. Rules without a Mailgun config are
// only logged.
type AlertConfig struct {
	CooldownMin int // minutes between repeat alerts per channel
	Rules       []AlertRule
}

// InfluxConfig is the optional InfluxDB sink.
type InfluxConfig struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

func (ic InfluxConfig) enabled() bool { return ic.URL != "" }

func defaultConfig() Config {
	return Config{
		Password:    "",
		IntervalSec: 1,
		Separator:   "\t",
		Columns:     Columns{AllTemps: true},
		Log: LogFileConfig{
			File:       "ema8314.log",
			MaxSizeMB:  50,
			MaxBackups: 14,
			MaxAgeDays: 30,
		},
		Alerts: AlertConfig{CooldownMin: 60},
	}
}

// loadConfig overlays the JSON file at path onto the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Device == "" {
		return cfg, fmt.Errorf("config %s: device address is required", path)
	}
	for _, r := range cfg.Alerts.Rules {
		if r.Channel < 0 || r.Channel > 3 {
			return cfg, fmt.Errorf("config %s: alert rule channel %d out of range", path, r.Channel)
		}
		if r.Low > r.High {
			return cfg, fmt.Errorf("config %s: alert rule channel %d low above high", path, r.Channel)
		}
	}
	if cfg.IntervalSec <= 0 {
		cfg.IntervalSec = 1
	}
	return cfg, nil
}

func (c Config) interval() time.Duration {
	return time.Duration(c.IntervalSec * float64(time.Second))
}
