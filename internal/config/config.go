package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	OCR       OCRConfig
	Extractor ExtractorConfig
	Upload    UploadConfig
	Log       LogConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// AuthConfig holds the shared static API token clients present in X-API-Key.
type AuthConfig struct {
	Token string `mapstructure:"token"`
}

// OCRConfig holds settings for the document OCR provider.
type OCRConfig struct {
	Provider      string `mapstructure:"provider"`
	APIKey        string `mapstructure:"api_key"`
	BaseURL       string `mapstructure:"base_url"`
	Model         string `mapstructure:"model"`
	TimeoutSecs   int    `mapstructure:"timeout_secs"`
	IncludeImages bool   `mapstructure:"include_images"`
}

// ExtractorConfig holds settings for the LLM field-extraction provider.
type ExtractorConfig struct {
	Provider    string  `mapstructure:"provider"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	TimeoutSecs int     `mapstructure:"timeout_secs"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`

	// RegulatoryInference controls whether the extractor may substitute
	// statutory IRDAI values for room rent and waiting period when the
	// document references the regulatory framework. With it off, those
	// fields must be grounded verbatim in the document text.
	RegulatoryInference bool `mapstructure:"regulatory_inference"`
}

// UploadConfig holds upload validation ceilings. Both default to the Mistral
// OCR document limits (50 MB, 1000 pages).
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	MaxPages      int   `mapstructure:"max_pages"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the POLEX_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("POLEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Auth defaults
	v.SetDefault("auth.token", "")

	// OCR defaults
	v.SetDefault("ocr.provider", "mistral")
	v.SetDefault("ocr.api_key", "")
	v.SetDefault("ocr.base_url", "https://api.mistral.ai/v1")
	v.SetDefault("ocr.model", "mistral-ocr-latest")
	v.SetDefault("ocr.timeout_secs", 120)
	v.SetDefault("ocr.include_images", false)

	// Extractor defaults
	v.SetDefault("extractor.provider", "openai")
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.base_url", "https://api.openai.com/v1")
	v.SetDefault("extractor.model", "gpt-4o-mini")
	v.SetDefault("extractor.timeout_secs", 60)
	v.SetDefault("extractor.temperature", 0.0)
	v.SetDefault("extractor.max_tokens", 1000)
	v.SetDefault("extractor.regulatory_inference", true)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 50)
	v.SetDefault("upload.max_pages", 1000)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "POLEX_SERVER_PORT",
		"server.read_timeout":            "POLEX_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "POLEX_SERVER_WRITE_TIMEOUT",
		"server.environment":             "POLEX_SERVER_ENVIRONMENT",
		"auth.token":                     "POLEX_AUTH_TOKEN",
		"ocr.provider":                   "POLEX_OCR_PROVIDER",
		"ocr.api_key":                    "POLEX_OCR_API_KEY",
		"ocr.base_url":                   "POLEX_OCR_BASE_URL",
		"ocr.model":                      "POLEX_OCR_MODEL",
		"ocr.timeout_secs":               "POLEX_OCR_TIMEOUT_SECS",
		"ocr.include_images":             "POLEX_OCR_INCLUDE_IMAGES",
		"extractor.provider":             "POLEX_EXTRACTOR_PROVIDER",
		"extractor.api_key":              "POLEX_EXTRACTOR_API_KEY",
		"extractor.base_url":             "POLEX_EXTRACTOR_BASE_URL",
		"extractor.model":                "POLEX_EXTRACTOR_MODEL",
		"extractor.timeout_secs":         "POLEX_EXTRACTOR_TIMEOUT_SECS",
		"extractor.temperature":          "POLEX_EXTRACTOR_TEMPERATURE",
		"extractor.max_tokens":           "POLEX_EXTRACTOR_MAX_TOKENS",
		"extractor.regulatory_inference": "POLEX_EXTRACTOR_REGULATORY_INFERENCE",
		"upload.max_file_size_mb":        "POLEX_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.max_pages":               "POLEX_UPLOAD_MAX_PAGES",
		"log.level":                      "POLEX_LOG_LEVEL",
		"log.format":                     "POLEX_LOG_FORMAT",
		"cors.allowed_origins":           "POLEX_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if POLEX_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("POLEX_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Auth = AuthConfig{
		Token: v.GetString("auth.token"),
	}
	cfg.OCR = OCRConfig{
		Provider:      v.GetString("ocr.provider"),
		APIKey:        v.GetString("ocr.api_key"),
		BaseURL:       v.GetString("ocr.base_url"),
		Model:         v.GetString("ocr.model"),
		TimeoutSecs:   v.GetInt("ocr.timeout_secs"),
		IncludeImages: v.GetBool("ocr.include_images"),
	}
	cfg.Extractor = ExtractorConfig{
		Provider:            v.GetString("extractor.provider"),
		APIKey:              v.GetString("extractor.api_key"),
		BaseURL:             v.GetString("extractor.base_url"),
		Model:               v.GetString("extractor.model"),
		TimeoutSecs:         v.GetInt("extractor.timeout_secs"),
		Temperature:         v.GetFloat64("extractor.temperature"),
		MaxTokens:           v.GetInt("extractor.max_tokens"),
		RegulatoryInference: v.GetBool("extractor.regulatory_inference"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		MaxPages:      v.GetInt("upload.max_pages"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
