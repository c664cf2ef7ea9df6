package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/podcast-feed/internal/modules/feed/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	HTTPPort   string        `koanf:"http_port"`
	FeedsPath  string        `koanf:"feeds_path"`
	BaseURL    string        `koanf:"base_url"`
	CacheTTL   int           `koanf:"cache_ttl"`
	AppEnv     domain.AppEnv `koanf:"app_env"`
	ConfigFile string        `koanf:"-"`
}

// DefaultConfigFiles are looked up in the working directory, first match wins
var DefaultConfigFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFiles...)
}

// LoadFrom reads the first existing file of candidates, then environment
// variables, then fills in defaults.
func LoadFrom(candidates ...string) (*Config, error) {
	k := koanf.New(".")

	configFile, found := lo.Find(candidates, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Environment variables override config file values
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("feeds_path") {
		k.Set("feeds_path", "./feeds")
	}
	if !k.Exists("cache_ttl") {
		k.Set("cache_ttl", 300)
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}
	if found {
		cfg.ConfigFile = configFile
	}

	if env, err := domain.ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = env
	} else {
		cfg.AppEnv = domain.AppEnvProduction
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return &cfg, nil
}
