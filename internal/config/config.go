// Package config resolves server settings from, lowest to highest priority:
// built-in defaults, an optional portfolio.yaml, PORTFOLIO_* environment
// variables (plus the conventional PORT), and command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyPort            = "port"
	KeyCatalog         = "catalog"
	KeyBackground      = "background"
	KeyStaticDir       = "static_dir"
	KeyDefaultMinLevel = "default_min_level"
	KeyMode            = "mode"

	envPrefix      = "PORTFOLIO"
	configFileName = "portfolio"
	configFileType = "yaml"
)

type Config struct {
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	Catalog         string `mapstructure:"catalog"`
	Background      string `mapstructure:"background"`
	StaticDir       string `mapstructure:"static_dir"`
	DefaultMinLevel int    `mapstructure:"default_min_level" validate:"min=0,max=100"`
	Mode            string `mapstructure:"mode" validate:"omitempty,oneof=debug release test"`
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// New returns a viper instance with defaults and environment bindings set.
// Callers bind their flags before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyBackground, "static/bg.png")
	v.SetDefault(KeyStaticDir, "static")
	v.SetDefault(KeyDefaultMinLevel, 0)
	v.SetDefault(KeyMode, "")

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	// Hosting platforms set a bare PORT.
	_ = v.BindEnv(KeyPort, envPrefix+"_PORT", "PORT")

	return v
}

// Load reads the config file, if any, and decodes the merged settings. An
// explicit configFile must exist; the default portfolio.yaml is optional.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
