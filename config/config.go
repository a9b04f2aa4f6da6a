// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName  = "studygenie"
	fileName = appName + ".yaml"
)

type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	Log      struct {
		File  string `mapstructure:"file" yaml:"file"`
		Debug bool   `mapstructure:"debug" yaml:"debug"`
	} `mapstructure:"log" yaml:"log"`
	Calculator struct {
		HistorySize int `mapstructure:"history_size" yaml:"history_size"`
	} `mapstructure:"calculator" yaml:"calculator"`
	Quiz struct {
		SecondsPerQuestion int `mapstructure:"seconds_per_question" yaml:"seconds_per_question"`
	} `mapstructure:"quiz" yaml:"quiz"`
	Notes struct {
		Markdown bool `mapstructure:"markdown" yaml:"markdown"`
	} `mapstructure:"notes" yaml:"notes"`
}

// Defaults returns the built-in values every key falls back to.
func Defaults() map[string]any {
	return map[string]any{
		"language":                  "en",
		"log.file":                  "",
		"log.debug":                 false,
		"calculator.history_size":   10,
		"quiz.seconds_per_question": 30,
		"notes.markdown":            true,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "StudyGenie")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, fileName), nil
}

// LoadConfig resolves T from, in rising precedence: defaults, the first
// studygenie.yaml found in the user, system or working directory (or the
// explicit file), STUDYGENIE_* environment variables and the flags of cmd.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	if explicitFile != nil && *explicitFile != "" {
		v.SetConfigFile(*explicitFile)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine, anything else is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("could not read config: %w", err)
		}
	}

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("could not decode config: %w", err)
	}

	return c, nil
}

// WriteConfigFile stores c as YAML in the user or system config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}
