// Package config holds runtime configuration, loaded from defaults, an
// optional gridrush.yaml, and GRIDRUSH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// DataPath holds serialized vocabulary indexes.
	DataPath string `mapstructure:"data-path"`
	// VocabularyPath holds newline-delimited text wordlists, one file per
	// language.
	VocabularyPath string `mapstructure:"vocabulary-path"`
	// DefaultLanguage is the vocabulary loaded at startup.
	DefaultLanguage string `mapstructure:"default-language"`
	// SolverWorkers caps concurrent start-cell searches. Zero means one
	// worker per CPU.
	SolverWorkers int  `mapstructure:"solver-workers"`
	Debug         bool `mapstructure:"debug"`
}

func DefaultConfig() Config {
	return Config{
		DataPath:        "./data",
		VocabularyPath:  "./vocabularies",
		DefaultLanguage: "english",
		SolverWorkers:   0,
		Debug:           false,
	}
}

// Load populates the config from file and environment on top of defaults.
func (c *Config) Load() error {
	v := viper.New()
	v.SetDefault("data-path", "./data")
	v.SetDefault("vocabulary-path", "./vocabularies")
	v.SetDefault("default-language", "english")
	v.SetDefault("solver-workers", 0)
	v.SetDefault("debug", false)

	v.SetConfigName("gridrush")
	v.AddConfigPath(".")
	v.SetEnvPrefix("gridrush")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return v.Unmarshal(c)
}

// AdjustRelativePaths rebases relative paths onto basePath. Used so the
// binary finds its data files regardless of the working directory.
func (c *Config) AdjustRelativePaths(basePath string) {
	c.DataPath = toAbsPath(basePath, c.DataPath)
	c.VocabularyPath = toAbsPath(basePath, c.VocabularyPath)
}

func toAbsPath(basePath, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(basePath, path)
}
