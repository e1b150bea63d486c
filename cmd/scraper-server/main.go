package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/joeshaw/envdecode"
	"github.com/sashabaranov/go-openai"

	"mcpbridge"
	"mcpbridge/mcpserver"
	"mcpbridge/tools"
	"mcpbridge/tools/scrape"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveCfg mcpbridge.ServeConfig
	if err := envdecode.Decode(&serveCfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	var cfg mcpbridge.ScraperConfig
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}

	if serveCfg.Debug {
		mcpbridge.Dump(cfg)
	}

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		slog.Error("SETUP: Failed to create completion backend", "error", err)
		return
	}

	fetcher := scrape.NewHTTPFetcher(&http.Client{
		Timeout: time.Duration(cfg.HTTPTimeoutSecs) * time.Second,
	}, cfg.MaxContentBytes)

	registry, err := scrape.NewRegistry(fetcher, completer)
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
			tracerProvider.Tracer(mcpbridge.TracerNameScraper),
			meterProvider.Meter(mcpbridge.TracerNameScraper),
		)
	}

	srv := mcpserver.New("scraper-server", "0.1.0", registry, dispatcher)

	if serveCfg.HTTPAddr != "" {
		err = srv.ServeHTTP(ctx, serveCfg.HTTPAddr, serveCfg.AuthToken)
	} else {
		err = srv.RunStdio(ctx)
	}
	if err != nil {
		slog.Error("FAILURE: Server stopped", "error", err)
	}
}

func newCompleter(ctx context.Context, cfg mcpbridge.ScraperConfig) (scrape.Completer, error) {
	switch cfg.Backend {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai backend")
		}
		return scrape.NewOpenAICompleter(openai.NewClient(cfg.OpenAIAPIKey), scrape.CompleterOptions{
			Model:       cfg.OpenAIModel,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		}), nil
	case "bedrock":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return scrape.NewBedrockCompleter(bedrockruntime.NewFromConfig(awsCfg), scrape.CompleterOptions{
			Model:       cfg.BedrockModelID,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		}), nil
	default:
		return nil, fmt.Errorf("unknown scraper backend %q", cfg.Backend)
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
