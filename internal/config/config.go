// Package config loads sampleapp settings with Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appName   = "sampleapp"
	envPrefix = "SAMPLEAPP"
	fileName  = appName + ".yml"
)

// Config holds the runner's sample inputs and logging settings.
type Config struct {
	Name     string  `mapstructure:"name" yaml:"name"`
	A        float64 `mapstructure:"a" yaml:"a"`
	B        float64 `mapstructure:"b" yaml:"b"`
	LogLevel string  `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string  `mapstructure:"log_file" yaml:"log_file"`
}

// Default returns the built-in configuration. With it the runner prints
// "Hello, GitHub Actions!" and "2 + 3 = 5".
func Default() *Config {
	return &Config{
		Name:     "GitHub Actions",
		A:        2,
		B:        3,
		LogLevel: "info",
		LogFile:  "",
	}
}

// Load loads configuration with precedence:
// ENV vars > project config > XDG global config > defaults.
// CLI flags are applied on top by the command that owns them.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(appName)

	def := Default()
	v.SetDefault("name", def.Name)
	v.SetDefault("a", def.A)
	v.SetDefault("b", def.B)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"name", "a", "b", "log_level", "log_file"} {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key)); err != nil {
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

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns $XDG_CONFIG_HOME/sampleapp/sampleapp.yml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, fileName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, fileName)
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return fileName
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

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
