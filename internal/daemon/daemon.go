package daemon

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bottled-app/bottled/internal/api"
	"github.com/bottled-app/bottled/internal/app/bottle"
	"github.com/bottled-app/bottled/internal/app/gamification"
	"github.com/bottled-app/bottled/internal/health"
	"github.com/bottled-app/bottled/internal/infra/sqlite"
)

// Daemon is the core bottled runtime. It wires together all services.
type Daemon struct {
	Config  Config
	DB      *sqlite.DB
	Bottles *bottle.Service
	Engine  *gamification.Engine
	Health  *health.Checker
	Server  *api.Server
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dataDir := cfg.Storage.Dir
	if dataDir == "" {
		dataDir = bottledHome()
	}

	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	bottles := bottle.NewService(db)
	engine := gamification.NewEngine(db)
	checker := health.NewChecker(db, dataDir)

	setupLogging(cfg.Logging)

	srv := api.NewServer(bottles, engine)
	srv.SetHealth(checker)
	srv.SetCORSOrigins(cfg.API.CORSOrigins)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:  cfg,
		DB:      db,
		Bottles: bottles,
		Engine:  engine,
		Health:  checker,
		Server:  srv,
	}, nil
}

// setupLogging applies the logging config: entries are mirrored into the
// configured file, and level "debug" adds file:line to every entry.
func setupLogging(cfg LoggingConfig) {
	if cfg.Level == "debug" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	if cfg.File == "" {
		return
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		log.Printf("[daemon] open log file: %v", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
}

// Run serves the HTTP API until SIGINT/SIGTERM, then shuts down
// gracefully.
func (d *Daemon) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: d.Server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[daemon] listening on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Printf("[daemon] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Close releases daemon resources.
func (d *Daemon) Close() error {
	return d.DB.Close()
}
