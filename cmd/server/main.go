package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aditya-debugs/Heal-Sync/internal/activity"
	"github.com/aditya-debugs/Heal-Sync/internal/agents"
	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/config"
	"github.com/aditya-debugs/Heal-Sync/internal/server"
	"github.com/aditya-debugs/Heal-Sync/internal/version"
	"github.com/aditya-debugs/Heal-Sync/pkg/logger"
	"github.com/aditya-debugs/Heal-Sync/pkg/worldgen"
)

func init() {
	logger.Init()
}

func main() {
	var (
		configPath string
		seed       int64
		port       int
	)

	root := &cobra.Command{
		Use:   "healsync",
		Short: "City healthcare network simulation",
		Long:  "HealSync runs a multi-agent simulation of a city healthcare network:\nlabs, hospitals, pharmacies and suppliers coordinating through an event bus.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			// Флаги имеют приоритет над файлом.
			if seed != 0 {
				cfg.Seed = seed
			}
			if port != 0 {
				cfg.Port = port
			}
			return run(cfg)
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	root.Flags().Int64Var(&seed, "seed", 0, "Master simulation seed (0 for random)")
	root.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides config)")

	if err := root.Execute(); err != nil {
		logger.Log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	logger.Log.Info("Starting HealSync...")
	logger.Log.Info(version.String())

	masterSeed := cfg.Seed
	if masterSeed == 0 {
		masterSeed = time.Now().UnixNano()
		logger.Log.Infof("🎲 Using random Master Seed: %d", masterSeed)
	} else {
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", masterSeed)
	}

	world := worldgen.Generate()
	eventBus := bus.New()
	activityLog := activity.New(cfg.ActivityCapacity)

	registry := agents.NewRegistry(world, eventBus, activityLog.Send, cfg, masterSeed)
	if err := registry.Start(); err != nil {
		return err
	}

	srv := server.New(world, eventBus, activityLog, cfg.Port)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		registry.Stop()
		return err
	case sig := <-stop:
		logger.Log.Infof("Received %s, shutting down...", sig)
		registry.Stop()
		return nil
	}
}
