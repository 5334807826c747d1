package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/palettekit/palettekit/internal/runnables"
)

// Config holds application configuration.
type Config struct {
	Palette PaletteConfig
	Release ReleaseConfig
	Tasks   TasksConfig
}

// PaletteConfig holds ranking and catalog settings.
type PaletteConfig struct {
	// HiddenNamespaces lists action namespaces excluded from the palette.
	HiddenNamespaces []string `mapstructure:"hidden_namespaces"`

	// SmartCase matches case-insensitively unless the query contains an
	// uppercase rune.
	SmartCase bool `mapstructure:"smart_case"`
}

// ReleaseConfig holds release channel settings.
type ReleaseConfig struct {
	// Channel overrides the build-time release channel when non-empty.
	Channel string `mapstructure:"channel"`
}

// TasksConfig holds runnable discovery settings.
type TasksConfig struct {
	// File is the task file path relative to each root.
	File string `mapstructure:"file"`

	// Roots lists the directories scanned for task files.
	Roots []string `mapstructure:"roots"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// PALETTEKIT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("palette.hidden_namespaces", []string{})
	v.SetDefault("palette.smart_case", true)
	v.SetDefault("release.channel", "")
	v.SetDefault("tasks.file", runnables.DefaultTaskFile)
	v.SetDefault("tasks.roots", []string{"."})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PALETTEKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "palettekit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PALETTEKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
