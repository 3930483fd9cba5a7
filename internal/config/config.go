package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// OpenPolicy decides what opening a voting site does to the checklist.
type OpenPolicy string

const (
	// OpenPolicyManual leaves the site unchecked; the user ticks it off.
	OpenPolicyManual OpenPolicy = "manual"
	// OpenPolicyMark records the visit as a completed vote.
	OpenPolicyMark OpenPolicy = "mark"
)

func (p OpenPolicy) IsValid() bool {
	switch p {
	case OpenPolicyManual, OpenPolicyMark:
		return true
	default:
		return false
	}
}

const EnvPrefix = "VT"

type Config struct {
	DBPath          string        `mapstructure:"db_path" yaml:"db_path"`
	Timezone        string        `mapstructure:"timezone" yaml:"timezone"`
	ResetHour       int           `mapstructure:"reset_hour" yaml:"reset_hour"`
	OpenPolicy      OpenPolicy    `mapstructure:"open_policy" yaml:"open_policy"`
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level"`
	CopyFlash       time.Duration `mapstructure:"copy_flash" yaml:"copy_flash"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval" yaml:"refresh_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_path", "")
	v.SetDefault("timezone", "America/New_York")
	v.SetDefault("reset_hour", 1)
	v.SetDefault("open_policy", string(OpenPolicyManual))
	v.SetDefault("log_level", "warn")
	v.SetDefault("copy_flash", "2s")
	v.SetDefault("refresh_interval", "60s")
}

// DefaultConfigDir is $XDG_CONFIG_HOME/votetrack (or the OS equivalent).
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "votetrack"), nil
}

// Load builds the effective configuration. Precedence, highest first:
// VT_* environment (including a .env file in the working directory),
// the config file, defaults. An explicit file that cannot be read is an
// error; a missing default file is not.
func Load(file string) (*Config, error) {
	// Real environment wins over .env; Load never overrides set variables.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize trims and lowercases the enum-like fields.
func (c *Config) Normalize() {
	c.OpenPolicy = OpenPolicy(strings.ToLower(strings.TrimSpace(string(c.OpenPolicy))))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.ResetHour < 0 || c.ResetHour > 23 {
		return fmt.Errorf("reset_hour must be 0-23, got %d", c.ResetHour)
	}
	if !c.OpenPolicy.IsValid() {
		return fmt.Errorf("open_policy must be %q or %q, got %q", OpenPolicyManual, OpenPolicyMark, c.OpenPolicy)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.CopyFlash <= 0 {
		return fmt.Errorf("copy_flash must be positive, got %s", c.CopyFlash)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval)
	}
	return nil
}

// Render returns the configuration as YAML.
func (c *Config) Render() (string, error) {
	out := struct {
		DBPath          string `yaml:"db_path"`
		Timezone        string `yaml:"timezone"`
		ResetHour       int    `yaml:"reset_hour"`
		OpenPolicy      string `yaml:"open_policy"`
		LogLevel        string `yaml:"log_level"`
		CopyFlash       string `yaml:"copy_flash"`
		RefreshInterval string `yaml:"refresh_interval"`
	}{
		DBPath:          c.DBPath,
		Timezone:        c.Timezone,
		ResetHour:       c.ResetHour,
		OpenPolicy:      string(c.OpenPolicy),
		LogLevel:        c.LogLevel,
		CopyFlash:       c.CopyFlash.String(),
		RefreshInterval: c.RefreshInterval.String(),
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return string(data), nil
}
