package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	// HTTP server
	ServerPort         string        `envconfig:"SERVER_PORT" default:"8000"`
	ServerBasePath     string        `envconfig:"SERVER_BASE_PATH" default:"/api"`
	ServerReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	ServerWriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"` // генерация шаблона может идти долго
	ServerIdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// CORS Settings
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Product page fetching
	FetchTimeout      time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	FetchUserAgent    string        `envconfig:"FETCH_USER_AGENT" default:"Mozilla/5.0"`
	FetchMaxBodyBytes int64         `envconfig:"FETCH_MAX_BODY_BYTES" default:"5242880"`
	FetchConcurrency  int           `envconfig:"FETCH_CONCURRENCY" default:"4"`

	// Completion API. Ключ API не хранится на сервере: его присылает клиент.
	AIModel       string        `envconfig:"AI_MODEL" default:"gpt-3.5-turbo"`
	AIBaseURL     string        `envconfig:"AI_BASE_URL" default:"https://api.openai.com/v1"`
	AITemperature float32       `envconfig:"AI_TEMPERATURE" default:"0.7"`
	AITimeout     time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`
}

// GetAllowedOrigins splits the CORSAllowedOrigins string into a slice.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	origins := strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
	out := origins[:0]
	for _, o := range origins {
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %v", c.FetchTimeout)
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive, got %v", c.AITimeout)
	}
	if c.FetchConcurrency < 1 {
		return fmt.Errorf("FETCH_CONCURRENCY must be at least 1, got %d", c.FetchConcurrency)
	}
	if c.FetchMaxBodyBytes <= 0 {
		return fmt.Errorf("FETCH_MAX_BODY_BYTES must be positive, got %d", c.FetchMaxBodyBytes)
	}
	if c.AIModel == "" {
		return fmt.Errorf("AI_MODEL must not be empty")
	}
	return nil
}

// LoadConfig loads configuration from an optional .env file and the environment.
func LoadConfig(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
			} else {
				log.Printf("Loaded configuration from %s", envFilePath)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
