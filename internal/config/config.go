// Package config loads the CLI settings from defaults, an optional config
// file and CAFFE2_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/caffe2/go-sdk/pkg/core"
	"github.com/caffe2/go-sdk/pkg/encoding"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "CAFFE2"

// Config holds the settings shared by all commands.
type Config struct {
	// HardLimit is the total bytes ceiling for binary reads.
	HardLimit int64 `mapstructure:"hard_limit"`
	// SoftLimit is the size above which reads log a warning. At or above
	// HardLimit it turns the warning off.
	SoftLimit int64 `mapstructure:"soft_limit"`
	// LogLevel is any level name logrus understands.
	LogLevel string `mapstructure:"log_level"`
	// Jobs bounds the number of files converted at once.
	Jobs int `mapstructure:"jobs"`
}

// Load reads the configuration. An empty path skips the config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("hard_limit", encoding.DefaultTotalBytesLimit)
	v.SetDefault("soft_limit", encoding.DefaultWarningThreshold)
	v.SetDefault("log_level", logrus.InfoLevel.String())
	v.SetDefault("jobs", runtime.NumCPU())
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the limits and the log level.
func (c *Config) Validate() error {
	if c.HardLimit <= 0 {
		return &core.ConfigError{Field: "hard_limit", Value: c.HardLimit, Err: errors.New("must be positive")}
	}
	if c.SoftLimit <= 0 {
		return &core.ConfigError{Field: "soft_limit", Value: c.SoftLimit, Err: errors.New("must be positive")}
	}
	if c.Jobs <= 0 {
		return &core.ConfigError{Field: "jobs", Value: c.Jobs, Err: errors.New("must be positive")}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &core.ConfigError{Field: "log_level", Value: c.LogLevel, Err: err}
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// ReadOptions converts the limits into encoding options that log through
// logger.
func (c *Config) ReadOptions(logger logrus.FieldLogger) []encoding.Option {
	return []encoding.Option{
		encoding.WithLimits(c.HardLimit, c.SoftLimit),
		encoding.WithLogger(logger),
	}
}
