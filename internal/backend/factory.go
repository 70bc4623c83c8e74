package backend

import (
	"fmt"

	"github.com/voldemort-x/Finance-Monitor/internal/backend/memory"
	"github.com/voldemort-x/Finance-Monitor/internal/config"
	"github.com/voldemort-x/Finance-Monitor/internal/log"
	"github.com/voldemort-x/Finance-Monitor/internal/monitor"
)

// New creates the backend selected by the configuration.
func New(cfg *config.Config, logger *log.Logger) (Backend, error) {
	logger = logger.WithComponent(log.ComponentBackend)

	switch Type(cfg.DataBackend) {
	case APIBackend:
		cli := monitor.NewClient(cfg.BackendURL, cfg.BackendTimeout)
		logger.Info("Initialized API backend",
			"base_url", cfg.BackendURL, "timeout", cfg.BackendTimeout.String())
		return cli, nil
	case MemoryBackend:
		store := memory.NewSeeded()
		logger.Info("Initialized memory backend")
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
