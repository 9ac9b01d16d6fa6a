package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Extractor ExtractorConfig
	Speech    SpeechConfig
	Image     ImageConfig
	Export    ExportConfig
	Assets    AssetsConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// ExtractorConfig holds settings for the LLM extraction service.
type ExtractorConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	MaxRetries  int    `mapstructure:"max_retries"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// SpeechConfig holds settings for the speech synthesis service.
type SpeechConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	LanguageCode string `mapstructure:"language_code"`
	Voice        string `mapstructure:"voice"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ImageConfig holds settings for the image generation service.
type ImageConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ExportConfig holds exporter output locations and limits.
type ExportConfig struct {
	CorpusFile     string `mapstructure:"corpus_file"`
	TextDir        string `mapstructure:"text_dir"`
	CorpusMaxBytes int    `mapstructure:"corpus_max_bytes"`
}

// AssetsConfig holds asset generation worker settings.
type AssetsConfig struct {
	AudioDir    string `mapstructure:"audio_dir"`
	ImageDir    string `mapstructure:"image_dir"`
	Concurrency int    `mapstructure:"concurrency"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the MOVE37_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MOVE37")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "move37")
	v.SetDefault("db.password", "move37_secret")
	v.SetDefault("db.name", "move37_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Extractor defaults
	v.SetDefault("extractor.provider", "gemini")
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.model", "gemini-2.0-flash")
	v.SetDefault("extractor.max_retries", 2)
	v.SetDefault("extractor.timeout_secs", 120)

	// Speech defaults
	v.SetDefault("speech.provider", "noop")
	v.SetDefault("speech.api_key", "")
	v.SetDefault("speech.language_code", "en-US")
	v.SetDefault("speech.voice", "en-US-Standard-J")
	v.SetDefault("speech.timeout_secs", 60)

	// Image defaults
	v.SetDefault("image.provider", "noop")
	v.SetDefault("image.api_key", "")
	v.SetDefault("image.model", "imagegeneration@005")
	v.SetDefault("image.timeout_secs", 120)

	// Export defaults
	v.SetDefault("export.corpus_file", "all_manuals_knowledge.json")
	v.SetDefault("export.text_dir", "manuals_text_export")
	v.SetDefault("export.corpus_max_bytes", 150000)

	// Assets defaults
	v.SetDefault("assets.audio_dir", "manual_audio")
	v.SetDefault("assets.image_dir", "manual_images")
	v.SetDefault("assets.concurrency", 4)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "MOVE37_SERVER_PORT",
		"server.read_timeout":     "MOVE37_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "MOVE37_SERVER_WRITE_TIMEOUT",
		"server.environment":      "MOVE37_SERVER_ENVIRONMENT",
		"db.host":                 "MOVE37_DB_HOST",
		"db.port":                 "MOVE37_DB_PORT",
		"db.user":                 "MOVE37_DB_USER",
		"db.password":             "MOVE37_DB_PASSWORD",
		"db.name":                 "MOVE37_DB_NAME",
		"db.sslmode":              "MOVE37_DB_SSLMODE",
		"db.max_open":             "MOVE37_DB_MAX_OPEN",
		"db.max_idle":             "MOVE37_DB_MAX_IDLE",
		"extractor.provider":      "MOVE37_EXTRACTOR_PROVIDER",
		"extractor.api_key":       "MOVE37_EXTRACTOR_API_KEY",
		"extractor.model":         "MOVE37_EXTRACTOR_MODEL",
		"extractor.max_retries":   "MOVE37_EXTRACTOR_MAX_RETRIES",
		"extractor.timeout_secs":  "MOVE37_EXTRACTOR_TIMEOUT_SECS",
		"speech.provider":         "MOVE37_SPEECH_PROVIDER",
		"speech.api_key":          "MOVE37_SPEECH_API_KEY",
		"speech.language_code":    "MOVE37_SPEECH_LANGUAGE_CODE",
		"speech.voice":            "MOVE37_SPEECH_VOICE",
		"speech.timeout_secs":     "MOVE37_SPEECH_TIMEOUT_SECS",
		"image.provider":          "MOVE37_IMAGE_PROVIDER",
		"image.api_key":           "MOVE37_IMAGE_API_KEY",
		"image.model":             "MOVE37_IMAGE_MODEL",
		"image.timeout_secs":      "MOVE37_IMAGE_TIMEOUT_SECS",
		"export.corpus_file":      "MOVE37_EXPORT_CORPUS_FILE",
		"export.text_dir":         "MOVE37_EXPORT_TEXT_DIR",
		"export.corpus_max_bytes": "MOVE37_EXPORT_CORPUS_MAX_BYTES",
		"assets.audio_dir":        "MOVE37_ASSETS_AUDIO_DIR",
		"assets.image_dir":        "MOVE37_ASSETS_IMAGE_DIR",
		"assets.concurrency":      "MOVE37_ASSETS_CONCURRENCY",
		"cors.allowed_origins":    "MOVE37_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MOVE37_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MOVE37_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Extractor = ExtractorConfig{
		Provider:    v.GetString("extractor.provider"),
		APIKey:      v.GetString("extractor.api_key"),
		Model:       v.GetString("extractor.model"),
		MaxRetries:  v.GetInt("extractor.max_retries"),
		TimeoutSecs: v.GetInt("extractor.timeout_secs"),
	}
	cfg.Speech = SpeechConfig{
		Provider:     v.GetString("speech.provider"),
		APIKey:       v.GetString("speech.api_key"),
		LanguageCode: v.GetString("speech.language_code"),
		Voice:        v.GetString("speech.voice"),
		TimeoutSecs:  v.GetInt("speech.timeout_secs"),
	}
	cfg.Image = ImageConfig{
		Provider:    v.GetString("image.provider"),
		APIKey:      v.GetString("image.api_key"),
		Model:       v.GetString("image.model"),
		TimeoutSecs: v.GetInt("image.timeout_secs"),
	}
	cfg.Export = ExportConfig{
		CorpusFile:     v.GetString("export.corpus_file"),
		TextDir:        v.GetString("export.text_dir"),
		CorpusMaxBytes: v.GetInt("export.corpus_max_bytes"),
	}
	cfg.Assets = AssetsConfig{
		AudioDir:    v.GetString("assets.audio_dir"),
		ImageDir:    v.GetString("assets.image_dir"),
		Concurrency: v.GetInt("assets.concurrency"),
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
