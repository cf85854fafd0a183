package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/orris-inc/estatehub/internal/infrastructure/database"
	"github.com/orris-inc/estatehub/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/orris-inc/estatehub/internal/interfaces/http"
)

func main() {
	// Parse environment from command line or env variable
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	env = bootstrap.ResolveEnv(env)

	cfg, log, err := bootstrap.Init(env)
	if err != nil {
		fmt.Printf("failed to start worker: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	log.Infow("starting SLA sweep worker", "environment", env, "interval", cfg.Engine.SLA.SweepInterval)

	container, err := httpRouter.NewContainer(context.Background(), database.Get(), cfg, log)
	if err != nil {
		log.Errorw("failed to build application", "error", err)
		return
	}
	defer container.Shutdown()

	if err := container.StartBackground(); err != nil {
		log.Errorw("failed to start scheduler", "error", err)
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)
}
