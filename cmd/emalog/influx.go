package main

import (
	"context"
	"math"
	"strconv"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// influxSink forwards records to an InfluxDB bucket, one point per
// channel per poll.
type influxSink struct {
	client influxdb2.Client
	write  api.WriteAPIBlocking
}

func newInfluxSink(cfg InfluxConfig) *influxSink {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	return &influxSink{
		client: client,
		write:  client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
	}
}

func (s *influxSink) Write(ctx context.Context, rec Record) error {
	for ch := 0; ch < 4; ch++ {
		fields := map[string]interface{}{
			"broken": rec.Broken[ch],
			"output": rec.Outputs[ch],
		}
		if !rec.Broken[ch] && !math.IsNaN(float64(rec.Temps[ch])) {
			fields["temperature"] = float64(rec.Temps[ch])
		}
		point := influxdb2.NewPoint(
			"ema8314",
			map[string]string{
				"channel": strconv.Itoa(ch),
				"unit":    rec.Units[ch],
			},
			fields,
			rec.Time,
		)
		if err := s.write.WritePoint(ctx, point); err != nil {
			return err
		}
	}
	return nil
}

func (s *influxSink) Close() {
	s.client.Close()
}
