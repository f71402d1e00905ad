// Package config manages recall's persistent configuration: a TOML file
// at .claude/recall.toml layered under RECALL_* environment variables,
// with CLI flags taking precedence over both.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const configFile = "recall.toml"

// configKeys enumerates the supported dotted keys.
var configKeys = map[string]struct{}{
	"memory.retention_days": {},
	"memory.max_doc_bytes":  {},
	"memory.snippet_length": {},
	"git.timeout_seconds":   {},
}

// IsValidConfigKey reports whether key is a supported configuration key.
func IsValidConfigKey(key string) bool {
	_, ok := configKeys[key]
	return ok
}

// ValidConfigKeys returns the sorted list of supported key names.
func ValidConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the config file location for a project root.
func Path(root string) string {
	return filepath.Join(root, ".claude", configFile)
}

// InitViper creates a configured *viper.Viper for the given project root.
//
// Precedence (highest to lowest):
//  1. CLI flags (once bound by the command layer)
//  2. Environment variables (RECALL_MEMORY_RETENTION_DAYS, ...)
//  3. .claude/recall.toml values
//  4. Defaults from NewDefaultConfig()
func InitViper(root string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("recall")
	v.SetConfigType("toml")
	v.AddConfigPath(filepath.Join(root, ".claude"))

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("RECALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setDefaults registers NewDefaultConfig under dotted keys so defaults.go
// stays the single source of truth.
func setDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault("memory.retention_days", d.Memory.RetentionDays)
	v.SetDefault("memory.max_doc_bytes", d.Memory.MaxDocBytes)
	v.SetDefault("memory.snippet_length", d.Memory.SnippetLength)
	v.SetDefault("git.timeout_seconds", d.Git.TimeoutSeconds)
}

// Load resolves the effective configuration for a project root.
func Load(root string) (Config, error) {
	v, err := InitViper(root)
	if err != nil {
		return NewDefaultConfig(), err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return NewDefaultConfig(), fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Save writes the config file for a project root.
func Save(root string, cfg Config) error {
	dir := filepath.Dir(Path(root))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(Path(root), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Set updates one dotted key and persists the file.
func Set(root, key string, value int) error {
	if !IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key: %q", key)
	}

	cfg, err := Load(root)
	if err != nil {
		return err
	}

	switch key {
	case "memory.retention_days":
		cfg.Memory.RetentionDays = value
	case "memory.max_doc_bytes":
		cfg.Memory.MaxDocBytes = value
	case "memory.snippet_length":
		cfg.Memory.SnippetLength = value
	case "git.timeout_seconds":
		cfg.Git.TimeoutSeconds = value
	}

	return Save(root, cfg)
}

// Get returns the effective value of one dotted key.
func Get(root, key string) (int, error) {
	if !IsValidConfigKey(key) {
		return 0, fmt.Errorf("unknown config key: %q", key)
	}

	cfg, err := Load(root)
	if err != nil {
		return 0, err
	}

	switch key {
	case "memory.retention_days":
		return cfg.Memory.RetentionDays, nil
	case "memory.max_doc_bytes":
		return cfg.Memory.MaxDocBytes, nil
	case "memory.snippet_length":
		return cfg.Memory.SnippetLength, nil
	case "git.timeout_seconds":
		return cfg.Git.TimeoutSeconds, nil
	}
	return 0, fmt.Errorf("unknown config key: %q", key)
}
