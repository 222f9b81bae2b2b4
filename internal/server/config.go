package server

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the HTTP service configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":3001".
	Addr string `koanf:"addr"`

	// DataDir is the root of the on-disk season snapshots.
	DataDir string `koanf:"data_dir"`

	// APIKey authenticates outbound requests to the upstream data API.
	APIKey string `koanf:"api_key"`

	// BaseURL overrides the upstream data API root.
	BaseURL string `koanf:"base_url"`

	// DefaultSeason is used when a request omits ?year=.
	DefaultSeason int `koanf:"default_season"`
}

// DefaultConfig returns the baseline configuration before file and env
// layering.
func DefaultConfig() *Config {
	return &Config{
		Addr:          ":3001",
		DataDir:       "data",
		DefaultSeason: 2025,
	}
}

// LoadConfig builds a Config by layering defaults, an optional YAML file, and
// environment variables. Order of precedence (low -> high):
//  1. defaults (DefaultConfig)
//  2. file (YAML) at path, or $CFBRANK_CONFIG when path is empty
//  3. env (prefix CFBRANK_, e.g. CFBRANK_ADDR, CFBRANK_DATA_DIR)
func LoadConfig(path string) (*Config, error) {
	cfg := *DefaultConfig()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("CFBRANK_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("CFBRANK_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "cfbrank_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.DataDir == "" {
		return nil, errors.New("data_dir must not be empty")
	}
	return &cfg, nil
}
