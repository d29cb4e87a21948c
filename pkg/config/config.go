package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/console/config"
	ConfigFileName    = "console.yml"
)

// DefaultServerSecret is the documented placeholder signing secret. Any real
// deployment overrides it via CONSOLE_SERVER_SECRET or the config file.
const DefaultServerSecret = "insecure-default-server-secret"

// ValidSignatureMethods is the list of HMAC methods credential derivation
// supports.
var ValidSignatureMethods = []string{"sha1", "sha256", "sha512"}

// ConsoleConfig holds all console data-layer configuration settings
type ConsoleConfig struct {
	// SignatureMethod is the HMAC method used to derive app key credentials
	SignatureMethod string `yaml:"signature_method" json:"signature_method"`

	// ServerSecret is the server-side signing secret keying the HMAC chain
	ServerSecret string `yaml:"server_secret" json:"server_secret"`

	// ConsoleAPIKey is the reserved client id for the console owner
	ConsoleAPIKey string `yaml:"console_api_key" json:"console_api_key"`

	// InstanceNamePrefix is prepended to generated instance names
	InstanceNamePrefix string `yaml:"instance_name_prefix" json:"instance_name_prefix"`

	// ForbiddenNames is the list of reserved instance names
	ForbiddenNames []string `yaml:"forbidden_names" json:"forbidden_names"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *ConsoleConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *ConsoleConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	// Load config
	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *ConsoleConfig {
	return &ConsoleConfig{
		SignatureMethod:    "sha256",
		ServerSecret:       DefaultServerSecret,
		ConsoleAPIKey:      "",
		InstanceNamePrefix: "i-",
		ForbiddenNames:     []string{"www", "api", "admin", "console", "dashboard"},
		sources:            make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*ConsoleConfig, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("CONSOLE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig ConsoleConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"signature_method", "server_secret", "console_api_key",
		"instance_name_prefix", "forbidden_names",
	}
}

func (c *ConsoleConfig) applyFileConfig(file *ConsoleConfig) {
	if file.SignatureMethod != "" {
		c.SignatureMethod = file.SignatureMethod
		c.sources["signature_method"] = "file"
	}
	if file.ServerSecret != "" {
		c.ServerSecret = file.ServerSecret
		c.sources["server_secret"] = "file"
	}
	if file.ConsoleAPIKey != "" {
		c.ConsoleAPIKey = file.ConsoleAPIKey
		c.sources["console_api_key"] = "file"
	}
	if file.InstanceNamePrefix != "" {
		c.InstanceNamePrefix = file.InstanceNamePrefix
		c.sources["instance_name_prefix"] = "file"
	}
	if len(file.ForbiddenNames) > 0 {
		c.ForbiddenNames = file.ForbiddenNames
		c.sources["forbidden_names"] = "file"
	}
}

func (c *ConsoleConfig) applyEnvConfig() {
	if val := os.Getenv("CONSOLE_SIGNATURE_METHOD"); val != "" {
		c.SignatureMethod = val
		c.sources["signature_method"] = "environment"
	}
	if val := os.Getenv("CONSOLE_SERVER_SECRET"); val != "" {
		c.ServerSecret = val
		c.sources["server_secret"] = "environment"
	}
	if val := os.Getenv("CONSOLE_API_KEY"); val != "" {
		c.ConsoleAPIKey = val
		c.sources["console_api_key"] = "environment"
	}
	if val := os.Getenv("CONSOLE_INSTANCE_NAME_PREFIX"); val != "" {
		c.InstanceNamePrefix = val
		c.sources["instance_name_prefix"] = "environment"
	}
	if val := os.Getenv("CONSOLE_FORBIDDEN_NAMES"); val != "" {
		c.ForbiddenNames = splitAndTrim(val)
		c.sources["forbidden_names"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *ConsoleConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *ConsoleConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *ConsoleConfig) Validate() error {
	valid := false
	for _, m := range ValidSignatureMethods {
		if c.SignatureMethod == m {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid signature_method: %s", c.SignatureMethod)
	}

	if c.ServerSecret == "" {
		return fmt.Errorf("server_secret must not be empty")
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *ConsoleConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "signature_method", Value: c.SignatureMethod, Source: c.Source("signature_method")},
		{Name: "server_secret", Value: redact(c.ServerSecret), Source: c.Source("server_secret")},
		{Name: "console_api_key", Value: redact(c.ConsoleAPIKey), Source: c.Source("console_api_key")},
		{Name: "instance_name_prefix", Value: c.InstanceNamePrefix, Source: c.Source("instance_name_prefix")},
		{Name: "forbidden_names", Value: strings.Join(c.ForbiddenNames, ","), Source: c.Source("forbidden_names")},
	}
}

// FormatText returns a text representation of the configuration
func (c *ConsoleConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *ConsoleConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// redact keeps secrets out of rendered output while showing whether they
// were set.
func redact(value string) string {
	if value == "" {
		return ""
	}
	return "(redacted)"
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
