package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/charmbracelet/log"

	_ "github.com/mycompany/bankapp/docs"
	"github.com/mycompany/bankapp/infra/initializer"
	"github.com/mycompany/bankapp/pkg/config"
	"github.com/mycompany/bankapp/webapi"
)

// @title Bank API
// @version 1.0.0
// @description REST API managing bank accounts with a synchronized search index.
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := webapi.New(deps.BankAccounts, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server", "env", cfg.Env, "address", addr)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		deps.Logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			deps.Logger.Error("shutdown failed", "error", err)
		}
	}()

	return app.Listen(addr)
}
