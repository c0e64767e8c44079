// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package server

import (
	"log/slog"
	"net/http"

	sloghttp "github.com/samber/slog-http"
)

// Ops is a second, unauthenticated listener carrying only the health
// endpoints, so the main listener can sit behind the public ingress
// while probes hit a private port.
type Ops struct {
	logger  *slog.Logger
	address string
	ready   func() error
}

func NewOps(address string, ready func() error) *Ops {
	return &Ops{
		logger:  slog.Default().WithGroup("ops"),
		address: address,
		ready:   ready,
	}
}

func (o *Ops) Run() error {
	mux := http.NewServeMux()

	loggerMW := sloghttp.NewWithConfig(
		o.logger, sloghttp.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithUserAgent:    true,
		},
	)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := o.ready(); err != nil {
			o.logger.ErrorContext(r.Context(), "readiness check failed", "error", err)
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    o.address,
		Handler: loggerMW(mux),
	}

	o.logger.Info("listening on", "address", o.address)
	return srv.ListenAndServe()
}
