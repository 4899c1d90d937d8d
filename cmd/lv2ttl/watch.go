package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/lv2ttl/config"
	"github.com/c360studio/lv2ttl/generator"
	"github.com/c360studio/lv2ttl/metrics"
)

func watchCmd(flags *globalFlags) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Regenerate manifests whenever a description changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("metrics-addr") {
				cfg.Watch.MetricsAddr = metricsAddr
			}

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return runWatch(ctx, cmd, logger, cfg, root)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, logger *slog.Logger, cfg *config.Config, root string) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	g, err := generator.New(generator.Config{
		Renderer: renderer,
		OutDir:   cfg.Output.Dir,
		Exclude:  []string{config.ProjectConfigFile},
		Logger:   logger,
		Metrics:  m,
	})
	if err != nil {
		return err
	}

	w, err := generator.NewWatcher(g, generator.WatcherConfig{
		Root:          root,
		DebounceDelay: cfg.Watch.Debounce,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	results, err := w.GenerateExisting(ctx)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.Source, res.Output)
	}

	if cfg.Watch.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.Watch.MetricsAddr,
			Handler:           metricsHandler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("Serving metrics", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	for ev := range w.Events() {
		switch {
		case ev.Error != nil:
			_, _ = errorColor.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", ev.Path, ev.Error)
		case ev.Result != nil:
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", ev.Operation, ev.Result.Source, ev.Result.Output)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ev.Operation, ev.Path)
		}
	}

	slog.Info("Received shutdown signal")
	return nil
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return mux
}
