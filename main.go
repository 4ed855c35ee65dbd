package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/seedhiai/resume-matcher/internal/catalog"
	"github.com/seedhiai/resume-matcher/internal/encoder"
	"github.com/seedhiai/resume-matcher/internal/events"
	"github.com/seedhiai/resume-matcher/internal/logger"
	"github.com/seedhiai/resume-matcher/internal/match"
	"github.com/seedhiai/resume-matcher/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("config error: ", err)
	}

	logr, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		log.Fatal("error building logger: ", err)
	}
	defer logr.Sync()

	ctx := context.Background()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		logr.Fatal("error loading job catalog", zap.Error(err))
	}

	gemini, err := encoder.NewGemini(ctx, cfg.GoogleAPIKey, cfg.EmbeddingModel)
	if err != nil {
		logr.Fatal("error creating encoder", zap.Error(err))
	}

	// Catalog rows never change for the process lifetime, so their
	// embeddings are cached; résumé embeddings are not.
	engine := match.New(cat, gemini,
		match.WithMinScore(cfg.MinScore),
		match.WithJobEncoder(encoder.NewCaching(gemini)),
	)

	var pub *events.Publisher
	if cfg.RabbitMQURL != "" {
		conn, err := amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			logr.Fatal("error connecting to RabbitMQ", zap.Error(err))
		}
		defer conn.Close()
		pub = events.New(conn)
	}

	srv := server.New(engine, logr, pub)

	logr.Info("starting server",
		zap.String("port", cfg.Port),
		zap.Int("jobs", cat.Len()),
		zap.String("embedding_model", gemini.Model()),
		zap.Float64("min_score", cfg.MinScore))

	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		logr.Fatal("server stopped", zap.Error(err))
	}
}

// loadCatalog reads the catalog from local disk or, when configured, from an
// R2 bucket. Object fetches are retried since network failures are transient.
func loadCatalog(ctx context.Context, cfg *config) (*catalog.Catalog, error) {
	if cfg.JobsCSVPath != "" {
		return catalog.LoadFile(cfg.JobsCSVPath)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2.AccessKey, cfg.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2.AccountID))
	})

	return retry(3, func() (*catalog.Catalog, error) {
		return catalog.LoadR2(ctx, client, cfg.R2.Bucket, cfg.R2.CatalogKey)
	})
}

// retry retries a function up to `attempts` times with exponential backoff.
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
