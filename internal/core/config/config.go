package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/guiyumin/vlink/internal/core/i18n"
	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "config.yml"
	AppDirName     = "vlink"
)

// Defaults applied when a value is missing from config.yml
const (
	DefaultLanguage      = "en"
	DefaultServerPort    = 8080
	DefaultWatchInterval = time.Second
)

// ConfigDir returns the standard config directory for vlink.
// Windows: %APPDATA%\vlink\
// macOS/Linux: ~/.config/vlink/
func ConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, AppDirName), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppDirName), nil
}

// ConfigPath returns the path to the config file.
// e.g., ~/.config/vlink/config.yml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

type Config struct {
	// Language for toasts and formatted text (e.g., "en", "zh")
	Language string `yaml:"language,omitempty"`

	// MultiLink extracts every URL from pasted text instead of only the first
	MultiLink bool `yaml:"multi_link,omitempty"`

	// Server configuration for `vlink serve`
	Server ServerConfig `yaml:"server,omitempty"`

	// Watch configuration for `vlink watch`
	Watch WatchConfig `yaml:"watch,omitempty"`
}

// ServerConfig holds HTTP server settings for `vlink serve`
type ServerConfig struct {
	// Port is the HTTP listen port (default: 8080)
	Port int `yaml:"port,omitempty"`

	// APIKey for authentication (optional, if set all non-health requests must include X-API-Key header)
	APIKey string `yaml:"api_key,omitempty"`
}

// WatchConfig holds clipboard watcher settings
type WatchConfig struct {
	// Interval between clipboard polls (default: 1s)
	Interval time.Duration `yaml:"interval,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Language: DefaultLanguage,
		Server: ServerConfig{
			Port: DefaultServerPort,
		},
		Watch: WatchConfig{
			Interval: DefaultWatchInterval,
		},
	}
}

// applyDefaults fills zero values left by a partial config file
func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Server.Port <= 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Watch.Interval <= 0 {
		c.Watch.Interval = DefaultWatchInterval
	}
}

// Exists checks if config file exists
func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config from ~/.config/vlink/config.yml
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the config to ~/.config/vlink/config.yml
func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	configPath, err := ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	header := "# vlink configuration file\n# Run 'vlink init' to regenerate with defaults\n\n"
	content := header + string(data)

	return os.WriteFile(configPath, []byte(content), 0644)
}

// SavePath returns the path where config will be saved
func SavePath() string {
	if path, err := ConfigPath(); err == nil {
		return path
	}
	return ConfigFileName
}

// Init creates a new config.yml with default values
func Init() error {
	if Exists() {
		path, _ := ConfigPath()
		return fmt.Errorf("%s already exists", path)
	}
	return Save(DefaultConfig())
}

// LoadOrDefault loads config if it exists, otherwise returns defaults
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		cfg = DefaultConfig()
	}
	return cfg
}

// Keys lists the keys accepted by Set and Get
var Keys = []string{
	"language",
	"multi_link",
	"server.port",
	"server.api_key",
	"watch.interval",
}

// Set sets a config value by dotted key
func (c *Config) Set(key, value string) error {
	switch key {
	case "language":
		if !i18n.IsSupported(value) {
			return fmt.Errorf("unsupported language: %s", value)
		}
		c.Language = value
	case "multi_link":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for multi_link: %s", value)
		}
		c.MultiLink = b
	case "server.port":
		port, err := strconv.Atoi(value)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port number: %s", value)
		}
		c.Server.Port = port
	case "server.api_key":
		c.Server.APIKey = value
	case "watch.interval":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid interval: %s", value)
		}
		c.Watch.Interval = d
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Get returns a config value by dotted key
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "language":
		return c.Language, nil
	case "multi_link":
		return strconv.FormatBool(c.MultiLink), nil
	case "server.port":
		return strconv.Itoa(c.Server.Port), nil
	case "server.api_key":
		return c.Server.APIKey, nil
	case "watch.interval":
		return c.Watch.Interval.String(), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}
