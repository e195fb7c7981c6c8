/*
Package config manages TOML (or YAML) config for wordmatch services.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bastiangx/wordmatch/internal/utils"
	"github.com/bastiangx/wordmatch/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Words  WordsConfig  `toml:"words" yaml:"words"`
	CLI    CliConfig    `toml:"cli" yaml:"cli"`
}

// ServerConfig has HTTP server options.
type ServerConfig struct {
	Addr              string `toml:"addr" yaml:"addr"`
	MaxBodyBytes      int    `toml:"max_body_bytes" yaml:"max_body_bytes"`
	ReadTimeoutMs     int    `toml:"read_timeout_ms" yaml:"read_timeout_ms"`
	WriteTimeoutMs    int    `toml:"write_timeout_ms" yaml:"write_timeout_ms"`
	ShutdownTimeoutMs int    `toml:"shutdown_timeout_ms" yaml:"shutdown_timeout_ms"`
}

// WordsConfig holds word list and index options.
type WordsConfig struct {
	Path   string `toml:"path" yaml:"path"`
	Engine string `toml:"engine" yaml:"engine"`
	Lazy   bool   `toml:"lazy" yaml:"lazy"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	PageSize int `toml:"page_size" yaml:"page_size"`
}

// ReadTimeout returns the read timeout as a duration
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutMs) * time.Millisecond
}

// WriteTimeout returns the write timeout as a duration
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutMs) * time.Millisecond
}

// ShutdownTimeout returns the graceful shutdown budget as a duration
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutMs) * time.Millisecond
}

// DefaultConfigName is the config file looked up in the config dir
const DefaultConfigName = "config.toml"

// GetDefaultConfigPath returns config.toml in the platform config dir,
// falling back to other writable locations (see utils.PathResolver)
func GetDefaultConfigPath() (string, error) {
	resolver, err := utils.NewPathResolver()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return resolver.GetConfigPath(DefaultConfigName)
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [config dir]/wordmatch/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              "127.0.0.1:3000",
			MaxBodyBytes:      64 << 10,
			ReadTimeoutMs:     5000,
			WriteTimeoutMs:    5000,
			ShutdownTimeoutMs: 5000,
		},
		Words: WordsConfig{
			Path:   "data/" + utils.DefaultWordListName,
			Engine: string(suggest.EngineBucket),
			Lazy:   false,
		},
		CLI: CliConfig{
			PageSize: suggest.DefaultPageSize,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file, or a YAML file when the extension says
// so. Keys missing from the file keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if utils.IsYAMLPath(configPath) {
		if err := utils.LoadYAMLFile(configPath, config); err != nil {
			return nil, fmt.Errorf("invalid YAML config %s: %w", configPath, err)
		}
		config.Validate()
		return config, nil
	}

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.Validate()
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if wordsSection, ok := utils.ExtractSection(tempConfig, "words"); ok {
		extractWordsConfig(wordsSection, &config.Words)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	config.Validate()
	return config, nil
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractString(data, "addr"); ok {
		server.Addr = val
	}
	if val, ok := utils.ExtractInt(data, "max_body_bytes"); ok {
		server.MaxBodyBytes = val
	}
	if val, ok := utils.ExtractInt(data, "read_timeout_ms"); ok {
		server.ReadTimeoutMs = val
	}
	if val, ok := utils.ExtractInt(data, "write_timeout_ms"); ok {
		server.WriteTimeoutMs = val
	}
	if val, ok := utils.ExtractInt(data, "shutdown_timeout_ms"); ok {
		server.ShutdownTimeoutMs = val
	}
}

// extractWordsConfig extracts word list configuration from a map
func extractWordsConfig(data map[string]any, words *WordsConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		words.Path = val
	}
	if val, ok := utils.ExtractString(data, "engine"); ok {
		words.Engine = val
	}
	if val, ok := utils.ExtractBool(data, "lazy"); ok {
		words.Lazy = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt(data, "page_size"); ok {
		cli.PageSize = val
	}
}

// Validate replaces out-of-range values with defaults
func (c *Config) Validate() {
	defaults := DefaultConfig()

	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Server.Addr
	}
	if c.Server.MaxBodyBytes <= 0 {
		log.Warnf("Invalid max_body_bytes %d, using %d", c.Server.MaxBodyBytes, defaults.Server.MaxBodyBytes)
		c.Server.MaxBodyBytes = defaults.Server.MaxBodyBytes
	}
	if c.Server.ReadTimeoutMs <= 0 {
		c.Server.ReadTimeoutMs = defaults.Server.ReadTimeoutMs
	}
	if c.Server.WriteTimeoutMs <= 0 {
		c.Server.WriteTimeoutMs = defaults.Server.WriteTimeoutMs
	}
	if c.Server.ShutdownTimeoutMs <= 0 {
		c.Server.ShutdownTimeoutMs = defaults.Server.ShutdownTimeoutMs
	}
	if _, err := suggest.ParseEngine(c.Words.Engine); err != nil {
		log.Warnf("%v, using %q", err, defaults.Words.Engine)
		c.Words.Engine = defaults.Words.Engine
	}
	if c.CLI.PageSize <= 0 {
		c.CLI.PageSize = defaults.CLI.PageSize
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML or YAML file depending on the extension
func SaveConfig(config *Config, configPath string) error {
	if utils.IsYAMLPath(configPath) {
		return utils.SaveYAMLFile(config, configPath)
	}
	return utils.SaveTOMLFile(config, configPath)
}

// RebuildConfigFile overwrites configPath with the defaults
func RebuildConfigFile(configPath string) error {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), configPath)
}
