// Package config provides configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "WREN_TOOLBAR_"

// FileExtTOML is the file extension for TOML configuration files.
const FileExtTOML = ".toml"

var (
	config   map[string]string
	defaults map[string]string
	mu       sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration: defaults, then the TOML config file, then
// environment variable overrides, then validation.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	defaults = make(map[string]string)

	setDefaults()
	loadFromFile()
	loadFromEnv()
	validate()
}

// setDefaults populates config with default values.
func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	configDir := filepath.Join(xdgConfigHome, "wren-toolbar")

	setDefault("config_dir", configDir)
	setDefault("toolbar_position", "top")
	setDefault("borders_enabled", "true")
	setDefault("preview_tab_count", "1")
	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
}

func setDefault(key, value string) {
	config[key] = value
	defaults[key] = value
}

// loadFromFile reads configuration from the TOML config file, if any.
func loadFromFile() {
	configPath := os.Getenv(envPrefix + "CONFIG_PATH")
	if configPath == "" {
		if configDir, ok := config["config_dir"]; ok {
			configPath = filepath.Join(configDir, "config"+FileExtTOML)
			if _, err := os.Stat(configPath); err != nil {
				return
			}
		}
	}
	if configPath == "" {
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to read config file %s: %v\n", configPath, err)
		return
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse config file %s: %v\n", configPath, err)
		return
	}

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			fmt.Fprintf(os.Stderr, "unsupported config value type for %s: %T\n", key, v)
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a configuration value to its string
// representation. Supported types are string, int, int64, float64, and bool.
func coerceConfigValue(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// loadFromEnv applies WREN_TOOLBAR_* environment variable overrides.
func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], envPrefix))
		config[key] = parts[1]
	}
}

// validate checks and normalizes configuration values using registered
// validators.
func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := defaults[key]
		normalized, err := validator(key, value, defaultValue)
		if err != nil {
			fmt.Fprintf(os.Stderr, "validation error for %s: %v, using default: %s\n", key, err, defaultValue)
			config[key] = defaultValue
			continue
		}
		config[key] = normalized
	}
}

// ensureLoaded lazily loads configuration for callers that never call Load.
func ensureLoaded() {
	mu.RLock()
	loaded := config != nil
	mu.RUnlock()
	if !loaded {
		Load()
	}
}

// Get returns the configuration value for key, or fallback when unset.
func Get(key, fallback string) string {
	ensureLoaded()
	mu.RLock()
	defer mu.RUnlock()
	if v, ok := config[key]; ok && v != "" {
		return v
	}
	return fallback
}

// GetBool returns the boolean configuration value for key.
func GetBool(key string, fallback bool) bool {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	return normalizeBool(v) == "true"
}

// GetInt returns the integer configuration value for key.
func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Set overrides a configuration value for the current process. Used by CLI
// flags and tests.
func Set(key, value string) {
	ensureLoaded()
	mu.Lock()
	defer mu.Unlock()
	config[strings.ToLower(key)] = value
}
