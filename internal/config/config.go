// Package config loads application configuration and initializes the
// global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	CricAPI  CricAPIConfig  `yaml:"cricapi" mapstructure:"cricapi"`
	Cricbuzz CricbuzzConfig `yaml:"cricbuzz" mapstructure:"cricbuzz"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Fixture  FixtureConfig  `yaml:"fixture" mapstructure:"fixture"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// CricAPIConfig holds primary source settings. An empty key disables the
// primary source; the run then goes straight to the fallback.
type CricAPIConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// CricbuzzConfig holds fallback source settings.
type CricbuzzConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	BaseURL    string  `yaml:"base_url" mapstructure:"base_url"`
	RatePerSec float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	Burst      int     `yaml:"burst" mapstructure:"burst"`
}

// OutputConfig configures the state file destination.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// FixtureConfig configures the default fixture used by --test.
type FixtureConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CRICKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The original deployment convention stored the key as a bare
	// CRICAPI_KEY in .env, so accept that alias too.
	_ = v.BindEnv("cricapi.key", "CRICKET_CRICAPI_KEY", "CRICAPI_KEY")

	// Defaults
	v.SetDefault("cricapi.base_url", "https://api.cricapi.com")
	v.SetDefault("cricapi.timeout_secs", 10)
	v.SetDefault("cricbuzz.enabled", true)
	v.SetDefault("cricbuzz.base_url", "http://mapps.cricbuzz.com/cbzios/match")
	v.SetDefault("cricbuzz.rate_per_sec", 2)
	v.SetDefault("cricbuzz.burst", 2)
	v.SetDefault("output.path", "match_state.json")
	v.SetDefault("fixture.path", "testdata/sample_cricapi_response.json")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
