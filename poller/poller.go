// Package poller drives the read/record cycle: once per interval it samples
// every configured sensor and hands each reading to the local data log, the
// spreadsheet uploader and (optionally) the MQTT publisher. The write paths
// are independent and best-effort - a failure on one path for one sensor is
// logged and never blocks the other paths, the other sensors or the loop.
package poller

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"dht-sheets-logger/config"
	"dht-sheets-logger/sensor"
)

const DefaultInterval = 120 * time.Second

// Appender is the local data log write path.
type Appender interface {
	Append(r sensor.Reading) error
}

// Uploader is the remote spreadsheet write path.
type Uploader interface {
	Append(ctx context.Context, spreadsheetId string, r sensor.Reading) error
}

// Publisher is the optional MQTT write path.
type Publisher interface {
	Publish(name string, r sensor.Reading) error
}

// Sensor pairs a sensor definition with the driver that samples it.
type Sensor struct {
	config.Sensor
	Driver sensor.Driver
}

// Poller polls all sensors sequentially on a single goroutine. A slow read
// or upload delays the remainder of the cycle; there is no per-sensor
// timeout and no concurrency across sensors.
type Poller struct {
	Sensors   []Sensor
	DataLog   Appender
	Uploader  Uploader
	Publisher Publisher
	Interval  time.Duration
}

// Run polls until ctx is cancelled. Cancellation is observed between cycles
// (and while sleeping), never mid-cycle.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	started := time.Now()

	for {
		p.cycle(ctx, time.Now())

		select {
		case <-ctx.Done():
			return nil

		case <-time.After(sleepFor(started, time.Now(), interval)):
		}
	}
}

// cycle reads every sensor once, in configuration order. All readings in a
// cycle share the one timestamp so that rows written for the same cycle
// never straddle a second boundary.
func (p *Poller) cycle(ctx context.Context, timestamp time.Time) {
	for _, s := range p.Sensors {
		humidity, temperature, err := s.Driver.Read()
		if err != nil {
			logrus.WithError(err).Warnf("failed to retrieve data from sensor %s", s.Name)
			continue
		}

		r := sensor.Reading{
			Timestamp:   timestamp,
			Humidity:    humidity,
			Temperature: temperature,
			Pin:         s.Pin,
		}

		if err := p.DataLog.Append(r); err != nil {
			logrus.WithError(err).Errorf("failed to write reading from sensor %s to the data log", s.Name)
		}

		if err := p.Uploader.Append(ctx, s.SpreadsheetID, r); err != nil {
			logrus.WithError(err).Errorf("failed to upload reading from sensor %s", s.Name)
		}

		if p.Publisher != nil {
			if err := p.Publisher.Publish(s.Name, r); err != nil {
				logrus.WithError(err).Errorf("failed to publish reading from sensor %s", s.Name)
			}
		}
	}
}

// sleepFor aligns successive wake-ups onto a stable half-interval phase
// rather than letting per-cycle latency accumulate as drift: with the
// default 120s interval the delay is 120s minus (elapsed mod 60s). The
// formula assumes a cycle never takes longer than half the interval; an
// overrunning cycle delays the next one.
func sleepFor(started, now time.Time, interval time.Duration) time.Duration {
	return interval - now.Sub(started)%(interval/2)
}
