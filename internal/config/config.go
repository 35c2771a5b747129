package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrUnknownFlavour = errors.New("unknown theme flavour")
)

var flavours = []string{"mocha", "latte", "frappe", "macchiato"}

type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Log    LogConfig    `mapstructure:"log"`
}

type OutputConfig struct {
	// BareMarkers renders type markers unquoted in the preview.
	BareMarkers bool `mapstructure:"bare_markers"`
}

type ThemeConfig struct {
	Flavour string `mapstructure:"flavour"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	File  string `mapstructure:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{BareMarkers: false},
		Theme:  ThemeConfig{Flavour: "mocha"},
		Log: LogConfig{
			Debug: false,
			File:  "debug.log",
		},
	}
}

// New returns a viper instance seeded with defaults and environment
// overrides, so flags can be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("output.bare_markers", defaults.Output.BareMarkers)
	v.SetDefault("theme.flavour", defaults.Theme.Flavour)
	v.SetDefault("log.debug", defaults.Log.Debug)
	v.SetDefault("log.file", defaults.Log.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// kept from the TUI's original DEBUG switch
	_ = v.BindEnv("log.debug", EnvPrefix+"_LOG_DEBUG", "DEBUG")

	return v
}

// Load reads configFile, or config.yaml under the config dir when empty,
// into v. A missing default file yields the defaults; a missing explicit
// file is ErrConfigNotFound.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	v.SetConfigType("yaml")

	if configFile != "" {
		if _, err := os.Stat(configFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configFile)
		}
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	for _, f := range flavours {
		if c.Theme.Flavour == f {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownFlavour, c.Theme.Flavour)
}

// Dir is the per user config directory of the app.
func Dir() (string, error) {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppID), nil
}
