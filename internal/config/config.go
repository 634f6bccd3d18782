// Package config provides environment-sourced configuration for the four
// managed services the backend depends on. Configuration is loaded once at
// process start, validated eagerly, and passed down explicitly; it is
// never re-read per request.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Gemini holds the completion-service configuration. These are the only
// values required for the library to function, so Load validates them
// eagerly and fails fast when one is absent.
type Gemini struct {
	APIKey string `validate:"required"`
	Model  string
}

// Search holds the hosted search index configuration.
type Search struct {
	Endpoint  string `validate:"omitempty,url"`
	APIKey    string
	IndexName string
}

// Storage holds the blob storage configuration for resume files.
type Storage struct {
	Endpoint  string `validate:"omitempty,url"`
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
}

// Email holds the transactional email provider configuration.
type Email struct {
	Endpoint string `validate:"omitempty,url"`
	APIKey   string
	From     string `validate:"omitempty,email"`
}

// Config is the process-wide configuration value. Immutable after Load.
type Config struct {
	Gemini  Gemini
	Search  Search
	Storage Storage
	Email   Email
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing completion-service values fail fast with a
// MissingEnvError naming the variable; the other services are validated by
// their own constructors when they are actually used.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Gemini: Gemini{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  os.Getenv("GEMINI_MODEL"),
		},
		Search: Search{
			Endpoint:  os.Getenv("SEARCH_ENDPOINT"),
			APIKey:    os.Getenv("SEARCH_API_KEY"),
			IndexName: os.Getenv("SEARCH_INDEX_NAME"),
		},
		Storage: Storage{
			Endpoint:  os.Getenv("STORAGE_ENDPOINT"),
			Region:    os.Getenv("STORAGE_REGION"),
			AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:    os.Getenv("STORAGE_BUCKET"),
		},
		Email: Email{
			Endpoint: os.Getenv("EMAIL_ENDPOINT"),
			APIKey:   os.Getenv("EMAIL_API_KEY"),
			From:     os.Getenv("EMAIL_FROM"),
		},
	}

	if cfg.Gemini.APIKey == "" {
		return nil, &MissingEnvError{Variable: "GEMINI_API_KEY"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values against their struct constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
