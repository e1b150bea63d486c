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

	"github.com/joeshaw/envdecode"
	"github.com/qdrant/go-client/qdrant"

	"mcpbridge"
	"mcpbridge/mcpserver"
	"mcpbridge/tools"
	"mcpbridge/tools/vector"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveCfg mcpbridge.ServeConfig
	if err := envdecode.Decode(&serveCfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var cfg mcpbridge.VectorConfig
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		slog.Error("SETUP: Failed to create qdrant client", "error", err)
		return
	}
	defer client.Close()

	registry, err := vector.NewRegistry(vector.NewQdrantStore(client))
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
			tracerProvider.Tracer(mcpbridge.TracerNameVector),
			meterProvider.Meter(mcpbridge.TracerNameVector),
		)
	}

	srv := mcpserver.New("qdrant-server", "0.1.0", registry, dispatcher)

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
