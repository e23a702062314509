package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/multierr"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/router"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/danielhkuo/quickly-vote/voting"
)

func main() {
	if err := cliparse.LoadEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg cliparse.Config) (err error) {
	ctx := context.Background()

	// Open the audit store; memory keeps nothing
	sink, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	if sink != nil {
		defer func() { err = multierr.Append(err, sink.Close()) }()
	}

	session, err := loadSession(ctx, cfg, sink)
	if err != nil {
		return err
	}

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(router.NewRouter(session, cfg)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	shutdownErr := make(chan error, 1)
	go func() {
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- server.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "port", cfg.Port, "store", cfg.StoreType, "phase", session.Phase().String())
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	err = <-shutdownErr
	slog.Info("Server closed", "error", err)
	return err
}

// loadSession replays stored records, or starts a fresh session when there are none
func loadSession(ctx context.Context, cfg cliparse.Config, sink voting.AuditSink) (*voting.Session, error) {
	admin := models.Identity(cfg.AdminIdentity)
	opts := voting.Options{Sink: sink, Logger: slog.Default()}

	if sink == nil {
		return voting.NewSession(admin, opts)
	}

	records, err := sink.Records(ctx)
	if err != nil {
		return nil, err
	}
	return voting.Restore(admin, records, opts)
}
