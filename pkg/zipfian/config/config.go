// Package config loads analysis settings from YAML files and the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lexstat/zipfian/pkg/zipfian/internalerr"
)

// Defaults applied when neither file nor environment say otherwise.
const (
	DefaultTopN = 200
	DefaultDir  = "text"
)

// Config holds the analysis settings shared by a whole run.
type Config struct {
	// TopN is the rank cutoff applied to every document; 0 disables it.
	TopN int `yaml:"top_n"`
	// StopwordsPath points at a YAML stopword list; empty selects the
	// built-in Russian set.
	StopwordsPath string `yaml:"stopwords"`
	// Dir is scanned for documents when none are given explicitly.
	Dir string `yaml:"dir"`
	// ChartDir is where rendered charts are written.
	ChartDir string `yaml:"chart_dir"`
	// KeepGoing selects skip-and-continue batch behavior instead of
	// failing on the first unreadable document.
	KeepGoing bool `yaml:"keep_going"`
}

// Load builds a Config from defaults, an optional YAML file, and
// ZIPFIAN_* environment overrides, in that precedence order. A .env
// file in the working directory is honored if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TopN:     DefaultTopN,
		Dir:      DefaultDir,
		ChartDir: ".",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.TopN = getEnvInt("ZIPFIAN_TOP_N", cfg.TopN)
	cfg.StopwordsPath = getEnv("ZIPFIAN_STOPWORDS", cfg.StopwordsPath)
	cfg.Dir = getEnv("ZIPFIAN_DIR", cfg.Dir)
	cfg.ChartDir = getEnv("ZIPFIAN_CHART_DIR", cfg.ChartDir)
	cfg.KeepGoing = getEnvBool("ZIPFIAN_KEEP_GOING", cfg.KeepGoing)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the numeric contract before the core is invoked.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("%w: top_n must be non-negative, got %d", internalerr.ErrInvalidConfig, c.TopN)
	}
	if c.Dir == "" {
		return fmt.Errorf("%w: dir must not be empty", internalerr.ErrInvalidConfig)
	}
	return nil
}

// Stopwords is the on-disk shape of a stopword list.
type Stopwords struct {
	Terms []string `yaml:"terms"`
}

// LoadStopwords loads a stopword list from a YAML file.
func LoadStopwords(path string) (*Stopwords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sw Stopwords
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, err
	}

	return &sw, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}
