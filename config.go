package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/seedhiai/resume-matcher/internal/match"
)

type r2Config struct {
	AccountID  string
	Bucket     string
	AccessKey  string
	SecretKey  string
	CatalogKey string
}

func (r r2Config) complete() bool {
	return r.AccountID != "" && r.Bucket != "" && r.AccessKey != "" && r.SecretKey != "" && r.CatalogKey != ""
}

type config struct {
	Port           string
	JobsCSVPath    string
	R2             r2Config
	GoogleAPIKey   string
	EmbeddingModel string
	MinScore       float64
	RabbitMQURL    string
	LogJSON        bool
	Debug          bool
}

// loadConfig reads the process configuration from the environment. The
// catalog must come from either JOBS_CSV_PATH or a complete R2_* set.
func loadConfig() (*config, error) {
	cfg := &config{
		Port:        os.Getenv("PORT"),
		JobsCSVPath: os.Getenv("JOBS_CSV_PATH"),
		R2: r2Config{
			AccountID:  os.Getenv("R2_ACCOUNT_ID"),
			Bucket:     os.Getenv("R2_BUCKET"),
			AccessKey:  os.Getenv("R2_ACCESS_KEY"),
			SecretKey:  os.Getenv("R2_SECRET_KEY"),
			CatalogKey: os.Getenv("R2_CATALOG_KEY"),
		},
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		EmbeddingModel: os.Getenv("EMBEDDING_MODEL"),
		MinScore:       match.DefaultMinScore,
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		Debug:          os.Getenv("DEBUG") == "true",
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.GoogleAPIKey == "" {
		return nil, errors.New("empty GOOGLE_API_KEY in environment")
	}

	if cfg.JobsCSVPath == "" && !cfg.R2.complete() {
		return nil, errors.New("no catalog source: set JOBS_CSV_PATH or the full R2_* set")
	}

	if v := os.Getenv("MATCH_MIN_SCORE"); v != "" {
		score, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MATCH_MIN_SCORE %q: %w", v, err)
		}
		cfg.MinScore = score
	}

	return cfg, nil
}
