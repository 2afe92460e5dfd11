package driver

import (
	"context"
	"time"
)

const (
	// DefaultTickLength paces presence heartbeats and peer expiry. Gameplay
	// itself is command-driven; the tick only serves the background layers.
	DefaultTickLength = time.Second * 15
)

type Manager interface {
	Tick(context.Context) error
}

// StationDriver runs the periodic heartbeat for every registered manager.
type StationDriver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewStationDriver(managers []Manager, opts ...StationDriverOpt) *StationDriver {
	d := &StationDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *StationDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *StationDriver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
