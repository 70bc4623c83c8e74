package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/voldemort-x/Finance-Monitor/internal/backend"
	appcli "github.com/voldemort-x/Finance-Monitor/internal/cli"
	"github.com/voldemort-x/Finance-Monitor/internal/config"
	apphttp "github.com/voldemort-x/Finance-Monitor/internal/http"
	"github.com/voldemort-x/Finance-Monitor/internal/log"
)

var cli struct {
	Serve serveCmd `cmd:"" default:"withargs" help:"Run the finance monitor web frontend."`
}

type serveCmd struct {
	Port           string        `help:"Port to listen on." env:"PORT" default:"8081"`
	Backend        string        `help:"Data backend (api or memory)." env:"DATA_BACKEND" default:"api"`
	BackendURL     string        `help:"Base URL of the finance monitor API." env:"BACKEND_URL" default:"http://localhost:5000"`
	BackendTimeout time.Duration `help:"Per-request timeout for backend calls." env:"BACKEND_TIMEOUT" default:"15s"`
}

func main() {
	appcli.LoadEnvFile()
	logger := appcli.SetupLogger()

	ctx := kong.Parse(&cli)
	ctx.FatalIfErrorf(ctx.Run(logger))
}

func (s *serveCmd) Run(logger *log.Logger) error {
	cfg := &config.Config{
		Port:           s.Port,
		DataBackend:    s.Backend,
		BackendURL:     s.BackendURL,
		BackendTimeout: s.BackendTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	be, err := backend.New(cfg, logger)
	if err != nil {
		return err
	}

	srv := apphttp.NewServer(":"+cfg.Port, be)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting finance monitor frontend", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-runCtx.Done()
	logger.Info("Server stopped gracefully")
	return nil
}
