package main

import (
	"context"
	"log"
	"os"

	"github.com/agenthands/schemagraph/internal/config"
	"github.com/agenthands/schemagraph/internal/core"
	"github.com/agenthands/schemagraph/internal/llm"
	"github.com/agenthands/schemagraph/internal/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if err := cfg.ApplyEnv(); err != nil {
		logger.Fatal("invalid environment", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	client, err := llm.NewClient(context.Background(), cfg.LLM, logger.Named("llm"))
	if err != nil {
		logger.Fatal("failed to initialize LLM client", zap.Error(err))
	}
	defer llm.Close(client)

	srv := server.NewServer(core.NewPipeline(client, cfg, logger), logger.Named("http"))
	r := srv.SetupRouter()

	logger.Info("starting server",
		zap.String("port", cfg.Server.Port),
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
