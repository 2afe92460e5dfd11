package command

import (
	"fmt"
	"time"

	"github.com/clawedcode/voidmud/internal/driver"
	"github.com/clawedcode/voidmud/internal/listener"
	"github.com/clawedcode/voidmud/internal/presence"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Static content loads once; sessions stamp worlds from it.
	build, err := cfg.Storage.BuildWorldBuilder()
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	// Embedded NATS carries all peer-to-peer traffic.
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	transport := presence.NewNatsTransport(natsServer)

	sessions, err := cfg.Sessions.BuildSessionManager(build, transport)
	if err != nil {
		return nil, fmt.Errorf("creating session manager: %w", err)
	}

	cm := listener.NewConnectionManager(sessions)
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	var driverOpts []driver.StationDriverOpt
	if cfg.TickInterval != "" {
		d, err := time.ParseDuration(cfg.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		driverOpts = append(driverOpts, driver.WithTickLength(d))
	}

	// The driver paces presence heartbeats and peer expiry.
	stationDriver := driver.NewStationDriver([]driver.Manager{sessions}, driverOpts...)

	return service.WorkerList{
		"nats":      natsServer,
		"sessions":  sessions,
		"driver":    stationDriver,
		"listeners": &listeners,
	}, nil
}
