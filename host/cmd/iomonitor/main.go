package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dlock8/InterconnectIO-Slave/host/logger"
	"github.com/dlock8/InterconnectIO-Slave/host/monitor"
	"github.com/dlock8/InterconnectIO-Slave/host/serial"
)

var (
	configPath = flag.String("config", "", "YAML configuration file (overrides -device)")
	device     = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud       = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	staleAfter = flag.Duration("stale", monitor.DefaultStaleAfterSec*time.Second, "Silence before a board is reported stale")
	showAll    = flag.Bool("all", false, "Log unclassified console lines too")
)

var log = logger.LogContainer.GetSimpleLogger()

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fleet := monitor.NewFleet()
	lines := make(chan monitor.Line, 64)
	staleEvery := time.Duration(cfg.Monitor.StaleAfterSec) * time.Second

	g, ctx := errgroup.WithContext(ctx)

	for _, c := range cfg.Monitor.Consoles {
		c := c
		t := monitor.NewTailer(c.Label, func() (serial.Port, error) {
			pcfg := serial.DefaultConfig(c.Device)
			pcfg.Baud = c.Baud
			return serial.Open(pcfg)
		})
		g.Go(func() error { return t.Run(ctx, lines) })
	}

	g.Go(func() error { return consume(ctx, fleet, lines) })
	g.Go(func() error { return reportStale(ctx, fleet, staleEvery) })

	log.Infof("Monitoring %d console(s)", len(cfg.Monitor.Consoles))

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("Monitor stopped: %v", err)
		os.Exit(1)
	}
}

// buildConfig assembles the console list from the YAML file, or from the
// -device flag when no file is given.
func buildConfig() (*monitor.Config, error) {
	if *configPath != "" {
		cfg, err := monitor.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		if err := monitor.ValidateConfig(cfg); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		monitor.NormalizeConfig(cfg)
		return cfg, nil
	}

	cfg := &monitor.Config{
		Monitor: monitor.MonitorConfig{
			StaleAfterSec: int(staleAfter.Seconds()),
			Consoles: []monitor.ConsoleConfig{
				{Device: *device, Baud: *baud},
			},
		},
	}
	if err := monitor.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	monitor.NormalizeConfig(cfg)
	return cfg, nil
}

// consume folds lines into the fleet and echoes them to the log.
func consume(ctx context.Context, fleet *monitor.Fleet, lines <-chan monitor.Line) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l := <-lines:
			fleet.Observe(l)
			switch l.Kind {
			case monitor.LineBootBanner:
				log.Infof("Console booted, firmware %s", l.Version)
			case monitor.LineHeartbeat:
				log.Infof("Board 0x%02x heartbeat, version %s", l.Address, l.Version)
			case monitor.LineTrace:
				log.Infof("Board 0x%02x: %s", l.Address, l.Text)
			case monitor.LineSelfTest:
				log.Infof("Self-test: %s", l.Text)
			default:
				if *showAll {
					log.Infof("Console noise: %s", l.Raw)
				}
			}
		}
	}
}

// reportStale warns once when a board goes silent and notes its return.
func reportStale(ctx context.Context, fleet *monitor.Fleet, maxAge time.Duration) error {
	reported := make(map[uint8]bool)
	ticker := time.NewTicker(maxAge / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stale := make(map[uint8]bool)
			for _, b := range fleet.Stale(maxAge) {
				stale[b.Address] = true
				if !reported[b.Address] {
					if b.StatusKnown {
						log.Warnf("Board 0x%02x silent for more than %v, last status 0x%02x", b.Address, maxAge, b.Status)
					} else {
						log.Warnf("Board 0x%02x silent for more than %v", b.Address, maxAge)
					}
					reported[b.Address] = true
				}
			}
			for addr := range reported {
				if !stale[addr] {
					log.Infof("Board 0x%02x is back", addr)
					delete(reported, addr)
				}
			}
		}
	}
}
