package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/me/msuite/internal/config"
	"github.com/me/msuite/internal/logging"
	"github.com/me/msuite/internal/server"
	"github.com/me/msuite/internal/store"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file")
	envFile := flag.String("env-file", ".env", "Path to a .env file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	scratch := flag.String("scratch", "", "Scratch directory for planned folders (overrides config)")
	checkm := flag.String("checkm", "", "checkm binary (overrides config)")
	dbPath := flag.String("db", "", `Run history database (default ~/.msuite/msuite.db, "none" disables)`)
	requireAuth := flag.Bool("require-auth", false, "Reject run calls without an Authorization header")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "Log format (text, json)")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Server.Addr = *addr
		case "scratch":
			cfg.Server.ScratchDir = *scratch
		case "checkm":
			cfg.Server.CheckM = *checkm
		case "db":
			cfg.Server.DBPath = *dbPath
		case "require-auth":
			cfg.Server.RequireAuth = *requireAuth
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	if *debug {
		cfg.Log.Level = "debug"
	}

	logger := logging.FromStrings(cfg.Log.Level, cfg.Log.Format)

	var serverOpts []server.Option

	// Open the run history store unless disabled.
	if cfg.Server.DBPath != "none" {
		path := cfg.Server.DBPath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				fmt.Fprintf(os.Stderr, "cannot determine home directory: %v\n", err)
				os.Exit(1)
			}
			dir := filepath.Join(home, ".msuite")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", dir, err)
				os.Exit(1)
			}
			path = filepath.Join(dir, "msuite.db")
		}

		st, err := store.NewSQLiteStore(path, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open database: %v\n", err)
			os.Exit(1)
		}
		defer st.Close()

		if err := st.Migrate(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
			os.Exit(1)
		}
		logger.Info("database ready", "path", path)
		serverOpts = append(serverOpts, server.WithStore(st))
	}

	srv := server.New(cfg.Server, logger, serverOpts...)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting",
			"addr", cfg.Server.Addr,
			"scratch", cfg.Server.ScratchDir,
			"checkm", cfg.Server.CheckM,
			"require_auth", cfg.Server.RequireAuth,
		)
		if cfg.Server.CallbackURL != "" {
			logger.Info("sdk callback configured", "url", cfg.Server.CallbackURL)
		}
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
