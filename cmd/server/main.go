// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"net/http"
	"net/url"

	bolt "go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jaythomasv29/tablego-sub001/internal/catering"
	"github.com/jaythomasv29/tablego-sub001/internal/config"
	"github.com/jaythomasv29/tablego-sub001/internal/content"
	"github.com/jaythomasv29/tablego-sub001/internal/db/kvdb"
	"github.com/jaythomasv29/tablego-sub001/internal/notify"
	"github.com/jaythomasv29/tablego-sub001/internal/reservation"
	"github.com/jaythomasv29/tablego-sub001/internal/server"
)

func main() {
	var (
		serviceName = flag.String("service-name", "tablego", "otel service name")
		addr        = flag.String("addr", "0.0.0.0:8080", "default server address")
		opsAddr     = flag.String("ops-addr", "0.0.0.0:8081", "health endpoint address")
		dbStr       = flag.String("db", "kvdb://testdata/tablego.db", "database connection string")
		otlpAddr    = flag.String("otlp-grpc", "", "default otlp/gRPC address, by default disabled. Example value: localhost:4317")
		logLevelArg = flag.String("log-level", "INFO", "log level")
	)
	flag.Parse()

	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(*logLevelArg))
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(jsonHandler)
	if err != nil {
		logger.Error("unable to parse log level", "level-input", *logLevelArg, "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)
	logger.Info("start and listen", "address", addr)
	logger.Info("otlp/gRPC", "address", otlpAddr, "service", serviceName)

	if *otlpAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		grpcOptions := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithBlock()}
		conn, err := grpc.DialContext(ctx, *otlpAddr, grpcOptions...)
		if err != nil {
			logger.Error("failed to create gRPC connection to collector", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		otelExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			logger.Error("failed to create trace exporter", "error", err)
			os.Exit(1)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(otelExporter))
		otel.SetTracerProvider(tp)
	}

	u, err := url.Parse(*dbStr)
	if err != nil {
		logger.Error("unable to parse db connection string", "error", err)
		os.Exit(1)
	}
	if u.Scheme != "kvdb" {
		logger.Error("unknown storage backend", "type", u.Scheme)
		os.Exit(1)
	}

	path := u.Host + u.Path
	bdb, err := bolt.Open(path, 0600, nil)
	if err != nil {
		logger.Error("could not open database", "path", path, "error", err)
		os.Exit(1)
	}
	defer bdb.Close()

	reservationStore, err := kvdb.NewReservationStore(bdb)
	if err != nil {
		logger.Error("could not initialize reservation bucket", "error", err)
		os.Exit(1)
	}
	cateringStore, err := kvdb.NewCateringStore(bdb)
	if err != nil {
		logger.Error("could not initialize catering bucket", "error", err)
		os.Exit(1)
	}
	messageStore, err := kvdb.NewMessageStore(bdb)
	if err != nil {
		logger.Error("could not initialize message bucket", "error", err)
		os.Exit(1)
	}
	subscriptionStore, err := kvdb.NewSubscriptionStore(bdb)
	if err != nil {
		logger.Error("could not initialize subscription bucket", "error", err)
		os.Exit(1)
	}
	notificationStore, err := kvdb.NewNotificationStore(bdb)
	if err != nil {
		logger.Error("could not initialize notification bucket", "error", err)
		os.Exit(1)
	}
	settingsStore, err := kvdb.NewSettingsStore(bdb)
	if err != nil {
		logger.Error("could not initialize settings bucket", "error", err)
		os.Exit(1)
	}
	menuStore, err := kvdb.NewMenuStore(bdb)
	if err != nil {
		logger.Error("could not initialize menu bucket", "error", err)
		os.Exit(1)
	}
	analyticsStore, err := kvdb.NewAnalyticsStore(bdb)
	if err != nil {
		logger.Error("could not initialize analytics bucket", "error", err)
		os.Exit(1)
	}
	employeeStore, err := kvdb.NewEmployeeStore(bdb)
	if err != nil {
		logger.Error("could not initialize employee bucket", "error", err)
		os.Exit(1)
	}

	cfg := config.Load()
	mailer := notify.NewMailer(cfg.SMTP, cfg.RestaurantEmail, cfg.BaseURL)
	dispatcher := notify.NewPushDispatcher(subscriptionStore, notificationStore, cfg.VAPID)

	srv := &http.Server{
		Addr: *addr,
		Handler: server.NewServer(
			*serviceName,
			cfg,
			reservation.NewService(reservationStore, mailer),
			catering.NewService(cateringStore, mailer),
			content.NewService(settingsStore, menuStore, messageStore, employeeStore, analyticsStore),
			dispatcher,
		),
	}

	ops := server.NewOps(*opsAddr, func() error {
		return bdb.View(func(*bolt.Tx) error { return nil })
	})
	go func() {
		if err := ops.Run(); err != nil {
			logger.Error("ops listener stopped", "error", err)
			os.Exit(1)
		}
	}()

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("error during listen and serve", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
