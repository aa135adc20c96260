package main

import (
	"context"
	"fmt"
	"math"
	"time"

	mailgun "github.com/mailgun/mailgun-go/v3"
	"github.com/rs/zerolog"
)

// alerter watches records against the configured rules and mails on
// breaches. A per-channel cooldown keeps a stuck sensor from flooding
// the recipients.
type alerter struct {
	rules    []AlertRule
	cooldown time.Duration
	send     func(subject, body string) error
	last     [4]time.Time
	log      zerolog.Logger
}

func newAlerter(cfg Config, log zerolog.Logger) *alerter {
	a := &alerter{
		rules:    cfg.Alerts.Rules,
		cooldown: time.Duration(cfg.Alerts.CooldownMin) * time.Minute,
		log:      log,
	}
	if cfg.Mailgun.enabled() {
		mc := cfg.Mailgun
		a.send = func(subject, body string) error {
			return sendMail(mc, subject, body)
		}
	}
	return a
}

// check inspects one record and fires at most one alert per channel.
func (a *alerter) check(rec Record) {
	for _, rule := range a.rules {
		ch := rule.Channel
		var reason string
		switch {
		case rec.Broken[ch]:
			reason = "sensor disconnected or broken"
		case math.IsNaN(float64(rec.Temps[ch])):
			reason = "no valid reading"
		case rec.Temps[ch] < rule.Low:
			reason = fmt.Sprintf("reading %.1f below limit %.1f", rec.Temps[ch], rule.Low)
		case rec.Temps[ch] > rule.High:
			reason = fmt.Sprintf("reading %.1f above limit %.1f", rec.Temps[ch], rule.High)
		default:
			continue
		}
		if !a.last[ch].IsZero() && rec.Time.Sub(a.last[ch]) < a.cooldown {
			continue
		}
		a.last[ch] = rec.Time
		a.log.Warn().Int("channel", ch).Str("reason", reason).Msg("temperature alert")
		if a.send == nil {
			continue
		}
		subj := fmt.Sprintf("EMA-8314 alert: channel %d", ch)
		body := fmt.Sprintf("%s on channel %d at %s", reason, ch, rec.Time.Format(time.RFC3339))
		if err := a.send(subj, body); err != nil {
			a.log.Error().Err(err).Msg("failed to send alert mail")
		}
	}
}

// sendMail delivers one message through Mailgun with a 10 second cap.
func sendMail(mc MailgunConfig, subject, body string) error {
	mg := mailgun.NewMailgun(mc.Domain, mc.APIKey)
	message := mg.NewMessage(mc.Sender, subject, body, mc.Recipients...)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, id, err := mg.Send(ctx, message)
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("mailgun returned no message id: %s", resp)
	}
	return nil
}
