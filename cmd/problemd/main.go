/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command problemd serves the demo routes with problem details error
// responses and exposes Prometheus metrics.
//
// Usage:
//
//	problemd [-config problemd.yaml]
//
// PROBLEMD_CONFIG overrides the -config flag.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dirpx.dev/problem/apis"
	"dirpx.dev/problem/config"
	"dirpx.dev/problem/handler"
	"dirpx.dev/problem/internal/demo"
	"dirpx.dev/problem/promx"
)

func main() {
	if err := run(); err != nil {
		slog.Error("problemd: exit", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	path := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(config.Path(*path))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	var (
		reg *prometheus.Registry
		obs apis.Observer
	)
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		o, err := promx.NewObserver(reg)
		if err != nil {
			return err
		}
		obs = o
	}

	h := handler.New(cfg.HandlerOptions(logger, obs)...)

	root := chi.NewRouter()
	if reg != nil {
		root.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	root.Mount("/", demo.Router(h, demo.Service{}))

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           root,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("problemd: listening", slog.String("addr", cfg.Listen), slog.Bool("metrics", cfg.Metrics))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("problemd: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
