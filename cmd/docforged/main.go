// Command docforged serves the Markdown to PDF API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/intelliforge/docforge"
	"github.com/intelliforge/docforge/internal/config"
	"github.com/intelliforge/docforge/internal/server"
)

// version is overridden at build time via ldflags.
var version = "1.0.0"

func main() {
	flags := pflag.NewFlagSet("docforged", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to YAML config file")
	addr := flags.String("addr", "", "listen address (overrides config)")
	showVersion := flags.BoolP("version", "V", false, "print version and exit")

	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *showVersion {
		fmt.Println("docforged " + version)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Info(fmt.Sprintf(format, args...))
	}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}

	poolSize := docforge.ResolvePoolSize(cfg.Pool.Workers)
	pool := docforge.NewServicePool(poolSize,
		docforge.WithTimeout(cfg.RenderTimeout()),
		docforge.WithCertificateTheme(cfg.Certificate.Theme),
	)
	defer pool.Close()

	handler := server.New(cfg, pool, logger, version)

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("docforged starting",
			"addr", srv.Addr,
			"pool_size", poolSize,
			"certificate_theme", cfg.Certificate.Theme,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	} else {
		logger.Info("shutdown complete")
	}
}
