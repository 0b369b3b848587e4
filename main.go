package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloud-ru/loan-goals-go/cmd"
	"github.com/cloud-ru/loan-goals-go/internal/config"
	"github.com/cloud-ru/loan-goals-go/internal/logger"
	"github.com/cloud-ru/loan-goals-go/internal/tracing"
)

// setup загружает конфигурацию (включая .env) и настраивает логгер.
// Некорректная конфигурация возвращается ошибкой, без отката на значения по умолчанию.
func setup() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(logger.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func main() {
	cfg, err := setup()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	shutdown, err := tracing.InitTracing(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Printf("Warning: tracing shutdown: %v", err)
		}
	}()

	cmd.Execute(cfg)
}
