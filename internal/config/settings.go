package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EmbeddingSettings configuration for the embedding provider
type EmbeddingSettings struct {
	Provider  string `mapstructure:"provider"`
	CacheSize int    `mapstructure:"cache_size"`
}

// Settings application settings
type Settings struct {
	TemplatesDir string            `mapstructure:"templates_dir"`
	LogLevel     string            `mapstructure:"log_level"`
	Embedding    EmbeddingSettings `mapstructure:"embedding"`
}

// LoadSettings loads settings from environment variables and optional .env file
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > .env file > defaults.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault("templates_dir", defaultTemplatesDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("embedding.provider", "")
	v.SetDefault("embedding.cache_size", 4096)

	v.SetEnvPrefix("LAUNCHKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("templates_dir", "LAUNCHKIT_TEMPLATES_DIR")
	_ = v.BindEnv("log_level", "LAUNCHKIT_LOG_LEVEL")
	_ = v.BindEnv("embedding.provider", "LAUNCHKIT_EMBEDDING_PROVIDER")
	_ = v.BindEnv("embedding.cache_size", "LAUNCHKIT_EMBEDDING_CACHE_SIZE")

	if flags != nil {
		_ = v.BindPFlag("templates_dir", flags.Lookup("templates-dir"))
		_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
		_ = v.BindPFlag("embedding.provider", flags.Lookup("embedding-provider"))
		_ = v.BindPFlag("embedding.cache_size", flags.Lookup("embedding-cache-size"))
	}

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if .env doesn't exist

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	settings.TemplatesDir = expandHomeDir(settings.TemplatesDir)

	return &settings, nil
}

// ValidateSettings checks the resolved configuration before startup
func ValidateSettings(s *Settings) error {
	if s.TemplatesDir == "" {
		return errors.New("templates-dir cannot be empty")
	}
	info, err := os.Stat(s.TemplatesDir)
	if err != nil {
		return errors.New("templates-dir does not exist: " + s.TemplatesDir)
	}
	if !info.IsDir() {
		return errors.New("templates-dir is not a directory: " + s.TemplatesDir)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	if s.Embedding.CacheSize < 0 {
		return errors.New("embedding-cache-size must not be negative")
	}
	return nil
}

// defaultTemplatesDir returns the default corpus root
func defaultTemplatesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "templates"
	}
	return filepath.Join(home, ".launchkit", "templates")
}

// expandHomeDir expands ~ to the user's home directory
func expandHomeDir(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}
