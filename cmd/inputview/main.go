package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/quiver/app"
	"github.com/milk9111/quiver/config"
	"github.com/milk9111/quiver/gameerr"
)

func main() {
	configPath := flag.String("config", "quiver.yaml", "configuration file (missing file uses defaults)")
	bindings := flag.String("bindings", "", "action bindings file, overrides the config")
	debug := flag.Bool("debug", false, "log dropped events and reloads")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *bindings != "" {
		cfg.Input.Bindings = *bindings
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	logger, closer, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	viewer, err := newViewer(cfg, logger)
	if err != nil {
		logger.Error("inputview: setup failed", "error", gameerr.From(err).Description())
		os.Exit(1)
	}

	a, err := app.New(cfg, logger, viewer)
	if err != nil {
		logger.Error("inputview: setup failed", "error", gameerr.From(err).Description())
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		ge := gameerr.From(err)
		logger.Error("inputview: stopped", "kind", ge.Kind().String(), "error", ge.Description())
		viewer.close()
		os.Exit(1)
	}
	viewer.close()
}
