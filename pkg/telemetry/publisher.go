package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"

	"github.com/robokits/nxt.go/pkg/nxt"
)

// Reading is one telemetry sample published to the bus.
type Reading struct {
	Time      int64 `json:"time"`
	BatteryMv int   `json:"battery_mv"`
	Light     *int  `json:"light,omitempty"`
}

// SensorPoll selects an optional light sensor to sample per reading.
type SensorPoll struct {
	Port nxt.InputPort
	Mode nxt.ColorMode
}

// DefaultInterval is used when Publisher.Interval is unset.
const DefaultInterval = 5 * time.Second

// Publisher periodically polls a brick and publishes JSON readings
// under <name>/readings.
type Publisher struct {
	Queue    *Queue
	Brick    *nxt.Brick
	Name     string
	Interval time.Duration
	Sensor   *SensorPoll
}

// Topic returns the topic readings are published to, relative to the
// queue's prefix.
func (p *Publisher) Topic() string {
	return p.Name + "/readings"
}

// Run implements framework.Runnable.
func (p *Publisher) Run(ctx context.Context) error {
	interval := p.Interval
	if interval == 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		p.publishOnce()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Publisher) publishOnce() {
	reading, err := p.poll()
	if err != nil {
		glog.Errorf("poll %s: %v", p.Name, err)
		return
	}
	payload, err := json.Marshal(reading)
	if err != nil {
		glog.Errorf("encode reading: %v", err)
		return
	}
	p.Queue.Pub(p.Topic(), payload)
}

// poll samples the brick once.
func (p *Publisher) poll() (*Reading, error) {
	mv, err := p.Brick.BatteryLevel()
	if err != nil {
		return nil, err
	}
	reading := &Reading{Time: time.Now().Unix(), BatteryMv: mv}
	if p.Sensor != nil {
		light, err := p.Brick.ReadColor(p.Sensor.Port, p.Sensor.Mode)
		if err != nil {
			return nil, err
		}
		reading.Light = &light
	}
	return reading, nil
}
