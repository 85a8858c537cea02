package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Articles ArticlesConfig
	Log      LogConfig
	// Keys rebinds shell and screen actions, e.g. quit = ["ctrl+q"].
	Keys map[string][]string
}

// UIConfig holds shell and presentation settings.
type UIConfig struct {
	Shell        string
	InitialTab   string `mapstructure:"initial_tab"`
	Animations   bool
	TransitionMS int `mapstructure:"transition_ms"`
	ToastSeconds int `mapstructure:"toast_seconds"`
}

// ArticlesConfig drives the simulated video generation.
type ArticlesConfig struct {
	TickMS       int `mapstructure:"tick_ms"`
	ProgressStep int `mapstructure:"progress_step"`
}

// LogConfig holds the log file settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

const (
	ShellAdmin = "admin"
	ShellUser  = "user"
)

// Load reads configuration from file and env. Env var overrides use prefix BHIOHUB_.
// An explicit path wins over BHIOHUB_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.shell", ShellAdmin)
	v.SetDefault("ui.initial_tab", "")
	v.SetDefault("ui.animations", true)
	v.SetDefault("ui.transition_ms", 300)
	v.SetDefault("ui.toast_seconds", 4)
	v.SetDefault("articles.tick_ms", 500)
	v.SetDefault("articles.progress_step", 10)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "bhiohub", "bhiohub.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("BHIOHUB_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bhiohub"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BHIOHUB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate normalizes the shell name and rejects nonsensical timings.
func (c *Config) Validate() error {
	c.UI.Shell = strings.ToLower(strings.TrimSpace(c.UI.Shell))
	switch c.UI.Shell {
	case ShellAdmin, ShellUser:
	default:
		return fmt.Errorf("config: unknown shell %q (want %s or %s)", c.UI.Shell, ShellAdmin, ShellUser)
	}
	if c.Articles.ProgressStep <= 0 || c.Articles.ProgressStep > 100 {
		return fmt.Errorf("config: articles.progress_step must be in 1..100, got %d", c.Articles.ProgressStep)
	}
	if c.Articles.TickMS <= 0 {
		return fmt.Errorf("config: articles.tick_ms must be positive, got %d", c.Articles.TickMS)
	}
	return nil
}

func (c Config) TransitionDuration() time.Duration {
	return time.Duration(c.UI.TransitionMS) * time.Millisecond
}

func (c Config) ToastTTL() time.Duration {
	return time.Duration(c.UI.ToastSeconds) * time.Second
}

func (c Config) ArticleTick() time.Duration {
	return time.Duration(c.Articles.TickMS) * time.Millisecond
}
