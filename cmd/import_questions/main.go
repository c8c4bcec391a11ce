package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"quiz-brain/cmd/import_questions/internal/seedmodels"
	"quiz-brain/internal/bootstrap"
	"quiz-brain/internal/config"
	"quiz-brain/internal/logger"

	"go.uber.org/zap"
)

func main() {
	filePath := flag.String("file", "configs/seed_data/questions.json", "JSON file mapping each topic to its questions")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		// If logger is not initialized yet, use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting question import", zap.String("path", *filePath))
	byteValue, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *filePath), zap.Error(err))
	}

	bank, err := seedmodels.Parse(byteValue)
	if err != nil {
		log.Fatal("Failed to parse seed file", zap.Error(err))
	}
	topics, err := bank.Prepare()
	if err != nil {
		log.Fatal("Seed file is invalid", zap.Error(err))
	}

	store, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize question store", zap.Error(err))
	}
	if store == nil {
		log.Fatal("Question store is not configured", zap.String("backend", cfg.Store.Backend))
	}
	defer store.Close()

	imported, failed := 0, 0
	for _, t := range topics {
		for _, reason := range t.Rejected {
			log.Warn("Skipping invalid question", zap.String("topic", t.Topic), zap.String("reason", reason))
		}

		appendCtx, cancel := context.WithTimeout(ctx, cfg.Store.Timeout)
		err := store.AppendQuestions(appendCtx, t.Topic, t.Questions)
		cancel()
		if err != nil {
			failed++
			log.Error("Failed to import topic", zap.String("topic", t.Topic), zap.Error(err))
			continue
		}

		imported += len(t.Questions)
		log.Info("Imported topic",
			zap.String("topic", t.Topic),
			zap.Int("questions", len(t.Questions)),
			zap.Int("rejected", len(t.Rejected)),
		)
	}

	log.Info("Question import completed",
		zap.Int("topics", len(topics)),
		zap.Int("imported", imported),
		zap.Int("failed_topics", failed),
	)
	if failed > 0 {
		os.Exit(1)
	}
}
