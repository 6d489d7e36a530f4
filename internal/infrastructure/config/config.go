package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Vector    VectorConfig    `mapstructure:"vector"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	LLM       LLMConfig       `mapstructure:"llm"`
	TTS       TTSConfig       `mapstructure:"tts"`
	Images    ImagesConfig    `mapstructure:"images"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	HTTPPort int    `mapstructure:"http_port"`
}

// DatabaseConfig holds the relational store configuration
type DatabaseConfig struct {
	Path   string `mapstructure:"path"`
	LogSQL bool   `mapstructure:"log_sql"`
}

// VectorConfig holds the semantic index configuration
type VectorConfig struct {
	Path string `mapstructure:"path"`
	Dim  int    `mapstructure:"dim"`
	TopK int    `mapstructure:"top_k"`
}

// EmbeddingConfig holds the embedding service configuration
type EmbeddingConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	BatchSize int    `mapstructure:"batch_size"`
	Timeout   int    `mapstructure:"timeout"`
}

// LLMConfig holds the chat completion service configuration
type LLMConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"`
}

// TTSConfig holds the speech synthesis configuration
type TTSConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	Voice    string `mapstructure:"voice"`
	CacheDir string `mapstructure:"cache_dir"`
	Timeout  int    `mapstructure:"timeout"`
}

// ImagesConfig holds the image scraping configuration
type ImagesConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Timeout  int    `mapstructure:"timeout"`
	Fallback string `mapstructure:"fallback"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.http_port", 8080)

	// Relational store defaults
	viper.SetDefault("database.path", "data/deepgloss.db")
	viper.SetDefault("database.log_sql", false)

	// Semantic index defaults (bge-m3 dimensionality)
	viper.SetDefault("vector.path", "data/vector_store.db")
	viper.SetDefault("vector.dim", 1024)
	viper.SetDefault("vector.top_k", 5)

	// Embedding defaults
	viper.SetDefault("embedding.endpoint", "http://localhost:9100/embed")
	viper.SetDefault("embedding.model", "BAAI/bge-m3")
	viper.SetDefault("embedding.batch_size", 32)
	viper.SetDefault("embedding.timeout", 30)

	// LLM defaults
	viper.SetDefault("llm.base_url", "https://api.deepseek.com")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.timeout", 60)

	// TTS defaults
	viper.SetDefault("tts.model", "tts-1")
	viper.SetDefault("tts.voice", "alloy")
	viper.SetDefault("tts.cache_dir", "data/audio_cache")
	viper.SetDefault("tts.timeout", 60)

	// Image scraping defaults
	viper.SetDefault("images.enabled", true)
	viper.SetDefault("images.timeout", 5)
	viper.SetDefault("images.fallback", "")

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

// EmbeddingTimeout returns the embedding call timeout as a duration.
func (c *Config) EmbeddingTimeout() time.Duration {
	return time.Duration(c.Embedding.Timeout) * time.Second
}

// LLMTimeout returns the chat completion timeout as a duration.
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLM.Timeout) * time.Second
}

// TTSTimeout returns the speech synthesis timeout as a duration.
func (c *Config) TTSTimeout() time.Duration {
	return time.Duration(c.TTS.Timeout) * time.Second
}
