// Package config loads rddi's settings using Viper: the defaults the wizard
// offers and how it presents help and runs commands.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mark3labs/rddi/internal/logger"
	"github.com/mark3labs/rddi/internal/prompt"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for rddi.
type Config struct {
	Program      string `mapstructure:"program" yaml:"program"`
	Port         string `mapstructure:"port" yaml:"port"`
	Interval     string `mapstructure:"interval" yaml:"interval"`
	BlockSize    string `mapstructure:"block_size" yaml:"block_size"`
	MinBlockSize string `mapstructure:"min_block_size" yaml:"min_block_size"`
	MaxErrors    string `mapstructure:"max_errors" yaml:"max_errors"`
	LogFile      string `mapstructure:"log_file" yaml:"log_file"`
	HelpToken    string `mapstructure:"help_token" yaml:"help_token"`
	HelpWidth    int    `mapstructure:"help_width" yaml:"help_width"`
	RunTimeout   int    `mapstructure:"run_timeout" yaml:"run_timeout"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
}

// Defaults returns the built-in settings.
func Defaults() *Config {
	return &Config{
		Program:      "rdd",
		Port:         "4832",
		Interval:     "5",
		BlockSize:    "512k",
		MinBlockSize: "512",
		MaxErrors:    "0",
		LogFile:      "",
		HelpToken:    "?",
		HelpWidth:    75,
		RunTimeout:   0,
		LogLevel:     "info",
	}
}

var keys = []string{
	"program", "port", "interval", "block_size", "min_block_size", "max_errors",
	"log_file", "help_token", "help_width", "run_timeout", "log_level",
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("rddi")

	d := Defaults()
	v.SetDefault("program", d.Program)
	v.SetDefault("port", d.Port)
	v.SetDefault("interval", d.Interval)
	v.SetDefault("block_size", d.BlockSize)
	v.SetDefault("min_block_size", d.MinBlockSize)
	v.SetDefault("max_errors", d.MaxErrors)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("help_token", d.HelpToken)
	v.SetDefault("help_width", d.HelpWidth)
	v.SetDefault("run_timeout", d.RunTimeout)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix("RDDI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range keys {
		if err := v.BindEnv(key, "RDDI_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that every wizard default is itself an acceptable answer.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Program) == "" {
		return fmt.Errorf("program is required")
	}

	number := prompt.Match(prompt.NumberPattern)
	size := prompt.Match(prompt.SizePattern)
	for _, f := range []struct {
		key, value string
		c          prompt.Constraint
	}{
		{"port", c.Port, number},
		{"interval", c.Interval, number},
		{"max_errors", c.MaxErrors, number},
		{"block_size", c.BlockSize, size},
		{"min_block_size", c.MinBlockSize, size},
	} {
		if _, ok := f.c.Accept(f.value); !ok {
			return fmt.Errorf("invalid %s: %q", f.key, f.value)
		}
	}

	if c.HelpToken == "" {
		return fmt.Errorf("help_token must not be empty")
	}
	if c.HelpWidth < 20 {
		return fmt.Errorf("help_width must be at least 20, got %d", c.HelpWidth)
	}
	if c.RunTimeout < 0 {
		return fmt.Errorf("run_timeout must be >= 0 (0 means no timeout)")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LogFileDefault returns the default log file offered by the wizard, with
// {pid} replaced by the current process id.
func (c *Config) LogFileDefault() string {
	return strings.ReplaceAll(c.LogFile, "{pid}", strconv.Itoa(os.Getpid()))
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/rddi/rddi.yml or $XDG_CONFIG_HOME/rddi/rddi.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rddi", "rddi.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rddi", "rddi.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "rddi.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
