package driver

import "time"

type StationDriverOpt func(*StationDriver)

func WithTickLength(tickLength time.Duration) StationDriverOpt {
	return func(d *StationDriver) {
		d.tickLength = tickLength
	}
}
