package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"quiz-brain/internal/bootstrap"
	"quiz-brain/internal/config"
	"quiz-brain/internal/logger"

	"go.uber.org/zap"
)

func main() {
	topicsFlag := flag.String("topics", "", "comma separated topics; overrides batch.topics")
	countFlag := flag.Int("count", 0, "questions per topic; overrides batch.questions_per_topic")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger might not be initialized yet, so use fmt for this critical error
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	topics := cfg.Batch.Topics
	if *topicsFlag != "" {
		topics = splitTopics(*topicsFlag)
	}
	count := cfg.Batch.QuestionsPerTopic
	if *countFlag > 0 {
		count = *countFlag
	}
	if len(topics) == 0 {
		log.Fatal("No topics to generate; set batch.topics or pass -topics")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Batch process starting up...", zap.Strings("topics", topics), zap.Int("count", count))

	store, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize question store", zap.Error(err))
	}
	defer store.Close()

	provider, err := bootstrap.OpenProvider(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize model provider", zap.Error(err))
	}
	if store == nil || provider == nil {
		log.Fatal("Batch generation needs both a question store and a model provider",
			zap.Bool("store_configured", store != nil),
			zap.Bool("model_configured", provider != nil),
		)
	}

	services := bootstrap.NewServices(cfg, store, provider, log)
	summary, err := services.Batch.GenerateForTopics(ctx, topics, count)
	if err != nil {
		log.Error("Batch process interrupted", zap.Error(err))
	}

	for _, r := range summary.Results {
		if r.Err != nil {
			log.Warn("Topic failed", zap.String("topic", r.Topic), zap.Error(r.Err))
			continue
		}
		log.Info("Topic done", zap.String("topic", r.Topic), zap.Int("generated", r.Generated), zap.Int("dropped", r.Dropped))
	}
	log.Info("Batch process finished", zap.Int("generated", summary.Generated), zap.Int("failed_topics", summary.Failed))

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func splitTopics(s string) []string {
	var topics []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
