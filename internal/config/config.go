// Package config manages persistent CLI configuration stored in ~/.config/amzads/config.yaml.
// It provides read/write/list operations and masks credentials in output.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aviadshiber/amzads/internal/client"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Known configuration keys.
const (
	KeyClientID     = "client_id"
	KeyClientSecret = "client_secret"
	KeyRegion       = "region"
	KeyProfileID    = "profile_id"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeySandbox      = "sandbox"
)

// sensitiveKeys are masked in list output.
var sensitiveKeys = map[string]bool{
	KeyClientSecret: true,
	KeyAccessToken:  true,
	KeyRefreshToken: true,
}

// knownKeys defines the valid configuration keys and their descriptions.
var knownKeys = map[string]string{
	KeyClientID:     "Login with Amazon client ID",
	KeyClientSecret: "Login with Amazon client secret",
	KeyRegion:       "API region or marketplace code (NA, EU, FE, US, UK, JP ...)",
	KeyProfileID:    "Advertising profile ID sent as the scope header",
	KeyAccessToken:  "OAuth access token",
	KeyRefreshToken: "OAuth refresh token",
	KeySandbox:      "Use the sandbox API host (true/false)",
}

// Config wraps viper to manage amzads configuration.
type Config struct {
	v        *viper.Viper
	filePath string
}

// New creates a Config that reads from ~/.config/amzads/config.yaml.
// It creates the config directory if it does not exist.
func New() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "determining home directory")
	}
	return NewAt(filepath.Join(home, ".config", "amzads", "config.yaml"))
}

// NewAt creates a Config backed by the YAML file at filePath.
func NewAt(filePath string) (*Config, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "creating config directory %s", dir)
	}

	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")

	// The file is created on first write.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	return &Config{v: v, filePath: filePath}, nil
}

// Get returns the value for a configuration key.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Set validates and writes a configuration key-value pair, then persists to disk.
func (c *Config) Set(key, value string) error {
	if _, ok := knownKeys[key]; !ok {
		return errors.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(KnownKeyNames(), ", "))
	}

	switch key {
	case KeyRegion:
		value = strings.ToUpper(strings.TrimSpace(value))
		if !client.ValidRegion(value) {
			return errors.Errorf("invalid region %q; must be one of: %s", value, strings.Join(client.RegionCodes(), ", "))
		}
	case KeySandbox:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Errorf("invalid sandbox value %q; must be true or false", value)
		}
		value = strconv.FormatBool(b)
	}

	c.v.Set(key, value)
	return c.write()
}

// SetTokens stores a renewed token pair in one write. An empty refresh token
// leaves the stored one unchanged.
func (c *Config) SetTokens(accessToken, refreshToken string) error {
	c.v.Set(KeyAccessToken, accessToken)
	if refreshToken != "" {
		c.v.Set(KeyRefreshToken, refreshToken)
	}
	return c.write()
}

// List returns all set configuration entries as key-value pairs.
// Sensitive values are masked.
func (c *Config) List() []Entry {
	var entries []Entry
	for _, key := range KnownKeyNames() {
		val := c.v.GetString(key)
		if val == "" {
			continue
		}
		if sensitiveKeys[key] {
			val = mask(val)
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
	return entries
}

// Entry is a single configuration key-value pair.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// KnownKeyNames returns known key names in display order.
func KnownKeyNames() []string {
	return []string{KeyClientID, KeyClientSecret, KeyRegion, KeyProfileID, KeyAccessToken, KeyRefreshToken, KeySandbox}
}

// Describe returns the help text for a known key.
func Describe(key string) string {
	return knownKeys[key]
}

// FilePath returns the path to the configuration file.
func (c *Config) FilePath() string {
	return c.filePath
}

func (c *Config) write() error {
	return errors.Wrapf(c.v.WriteConfigAs(c.filePath), "writing %s", c.filePath)
}

// mask shows the first 4 characters followed by "****".
func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
