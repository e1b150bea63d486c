package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"

	"mcpbridge"
	"mcpbridge/mcpserver"
	"mcpbridge/tools"
	"mcpbridge/tools/objectstore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveCfg mcpbridge.ServeConfig
	if err := envdecode.Decode(&serveCfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var cfg mcpbridge.StorageConfig
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		slog.Error("SETUP: Failed to load AWS config", "error", err)
		return
	}

	store := objectstore.NewS3Store(s3.NewFromConfig(awsCfg))

	registry, err := objectstore.NewRegistry(store)
	if err != nil {
		slog.Error("SETUP: Failed to create tool registry", "error", err)
		return
	}

	callLogger, cleanup, err := newCallLogger(serveCfg)
	if err != nil {
		slog.Error("SETUP: Failed to create call logger", "error", err)
		return
	}
	defer func() {
		if err := cleanup(); err != nil {
			slog.Error("SETUP: Failed to flush call log", "error", err)
		}
	}()

	base := tools.NewDispatcher(registry, callLogger)
	var dispatcher mcpbridge.CallDispatcher = base

	if serveCfg.OtelEnabled {
		tracerProvider, meterProvider, otelShutdown, err := mcpbridge.InitOtel(ctx)
		if err != nil {
			slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
			return
		}
		defer func() {
			if err := otelShutdown(context.Background()); err != nil {
				slog.Error("SETUP: Failed to shut down OpenTelemetry", "error", err)
			}
		}()

		dispatcher = tools.NewInstrumentedDispatcher(
			base,
			tracerProvider.Tracer(mcpbridge.TracerNameStorage),
			meterProvider.Meter(mcpbridge.TracerNameStorage),
		)
	}

	srv := mcpserver.New("s3-server", "0.1.0", registry, dispatcher)

	if serveCfg.HTTPAddr != "" {
		err = srv.ServeHTTP(ctx, serveCfg.HTTPAddr, serveCfg.AuthToken)
	} else {
		err = srv.RunStdio(ctx)
	}
	if err != nil {
		slog.Error("FAILURE: Server stopped", "error", err)
	}
}

func newCallLogger(cfg mcpbridge.ServeConfig) (tools.CallLogger, func() error, error) {
	if cfg.CallLogPath != "" {
		logFile, err := os.OpenFile(cfg.CallLogPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open call log file: %w", err)
		}
		logger := mcpbridge.NewFileCallLogger(logFile)
		cleanup := func() error {
			return errors.Join(logger.Flush(), logFile.Close())
		}
		return logger, cleanup, nil
	}

	// Stdout carries the MCP stream in stdio mode, so the line logger is only
	// safe when serving over HTTP.
	if cfg.HTTPAddr != "" {
		return mcpbridge.NewStdoutCallLogger(), func() error { return nil }, nil
	}
	return tools.NoOpCallLogger{}, func() error { return nil }, nil
}
