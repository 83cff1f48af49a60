package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "PATHFINDER_CONFIG"

// DefaultPaths are searched in order when PathEnvVar is unset.
var DefaultPaths = []string{"config.yaml", "config.yml"}

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Mongo    MongoConfig    `koanf:"mongo"`
	Redis    RedisConfig    `koanf:"redis"`
	Auth     AuthConfig     `koanf:"auth"`
	Logging  LoggingConfig  `koanf:"logging"`
	Analysis AnalysisConfig `koanf:"analysis"`
	AI       AIConfig       `koanf:"ai"`
}

type ServerConfig struct {
	Port               string        `koanf:"port"`
	ReadTimeout        time.Duration `koanf:"read_timeout"`
	WriteTimeout       time.Duration `koanf:"write_timeout"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
	CORSAllowedHeaders []string      `koanf:"cors_allowed_headers"`
}

type MongoConfig struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

type RedisConfig struct {
	URI        string        `koanf:"uri"`
	SessionTTL time.Duration `koanf:"session_ttl"`
}

type AuthConfig struct {
	JWTSecret          string        `koanf:"jwt_secret"`
	AdminUsername      string        `koanf:"admin_username"`
	AdminPassword      string        `koanf:"admin_password"`
	AdminTokenTTL      time.Duration `koanf:"admin_token_ttl"`
	RespondentTokenTTL time.Duration `koanf:"respondent_token_ttl"`
}

type LoggingConfig struct {
	Mode  string `koanf:"mode"`
	Level string `koanf:"level"`
}

type AnalysisConfig struct {
	Timeout        time.Duration `koanf:"timeout"`
	CandidateLimit int           `koanf:"candidate_limit"`
	CatalogPath    string        `koanf:"catalog_path"` // replaces the bundled weights CSV when set
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        15 * time.Second,
			WriteTimeout:       60 * time.Second,
			ShutdownTimeout:    30 * time.Second,
			CORSAllowedOrigins: []string{"*"},
			CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "pathfinder",
		},
		Redis: RedisConfig{
			URI:        "localhost:6379",
			SessionTTL: 24 * time.Hour,
		},
		Auth: AuthConfig{
			JWTSecret:          "dev-secret-change-in-production",
			AdminUsername:      "admin",
			AdminPassword:      "admin123",
			AdminTokenTTL:      24 * time.Hour,
			RespondentTokenTTL: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Mode:  "development",
			Level: "info",
		},
		Analysis: AnalysisConfig{
			Timeout:        45 * time.Second,
			CandidateLimit: 150,
		},
		AI: DefaultAIConfig(),
	}
}

// envKeys maps recognised environment variables to config paths. Anything
// else in the environment is ignored.
var envKeys = map[string]string{
	"port":                     "server.port",
	"cors_allowed_origins":     "server.cors_allowed_origins",
	"cors_allowed_headers":     "server.cors_allowed_headers",
	"read_timeout":             "server.read_timeout",
	"write_timeout":            "server.write_timeout",
	"shutdown_timeout":         "server.shutdown_timeout",
	"mongo_uri":                "mongo.uri",
	"mongo_database":           "mongo.database",
	"redis_uri":                "redis.uri",
	"session_ttl":              "redis.session_ttl",
	"jwt_secret":               "auth.jwt_secret",
	"admin_username":           "auth.admin_username",
	"admin_password":           "auth.admin_password",
	"log_mode":                 "logging.mode",
	"log_level":                "logging.level",
	"analysis_timeout":         "analysis.timeout",
	"analysis_candidate_limit": "analysis.candidate_limit",
	"catalog_path":             "analysis.catalog_path",
	"gemini_api_key":           "ai.api_key",
	"gemini_base_url":          "ai.base_url",
	"gemini_model_extract":     "ai.models.extract",
	"gemini_model_narrate":     "ai.models.narrate",
	"gemini_timeout_ms":        "ai.timeout_ms",
	"gemini_rps":               "ai.requests_per_second",
	"gemini_extract_retries":   "ai.extract_retries",
}

// sliceKeys are config paths that arrive from the environment as
// comma-separated strings.
var sliceKeys = []string{
	"server.cors_allowed_origins",
	"server.cors_allowed_headers",
}

func envTransform(key string) string {
	return envKeys[strings.ToLower(key)]
}

// Load layers struct defaults, an optional YAML file and the environment, in
// that order of increasing priority, and validates the result.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom is Load with an explicit YAML path; an empty path skips the file.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := splitSlices(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Redis.URI = strings.TrimPrefix(cfg.Redis.URI, "redis://")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func splitSlices(k *koanf.Koanf) error {
	for _, path := range sliceKeys {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// Validate checks value ranges. A missing Gemini key is allowed: the
// analysis pipeline then serves fallback results.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if c.Mongo.URI == "" || c.Mongo.Database == "" {
		errs = append(errs, errors.New("mongo.uri and mongo.database are required"))
	}
	if c.Redis.URI == "" {
		errs = append(errs, errors.New("redis.uri is required"))
	}
	if c.Redis.SessionTTL <= 0 {
		errs = append(errs, errors.New("redis.session_ttl must be positive"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is required"))
	}
	if c.Analysis.Timeout <= 0 {
		errs = append(errs, errors.New("analysis.timeout must be positive"))
	}
	// The stuck response is written after the analysis deadline.
	if c.Server.WriteTimeout <= c.Analysis.Timeout {
		errs = append(errs, fmt.Errorf("server.write_timeout (%s) must exceed analysis.timeout (%s)",
			c.Server.WriteTimeout, c.Analysis.Timeout))
	}
	if c.Analysis.CandidateLimit < 1 {
		errs = append(errs, errors.New("analysis.candidate_limit must be at least 1"))
	}
	if c.AI.RequestsPerSecond <= 0 || c.AI.Burst < 1 {
		errs = append(errs, errors.New("ai.requests_per_second and ai.burst must be positive"))
	}
	if c.AI.ExtractRetries < 0 {
		errs = append(errs, errors.New("ai.extract_retries must not be negative"))
	}
	return errors.Join(errs...)
}
