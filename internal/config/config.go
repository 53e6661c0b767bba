// Package config resolves demo settings from flags, environment variables
// and the YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ejolly/demo-project/internal/appdir"
)

// EnvPrefix is prepended to every key when reading environment variables
// (e.g. DEMO_OUTPUT).
const EnvPrefix = "DEMO"

// ErrUnknownKey is returned when a config key is not recognised.
var ErrUnknownKey = errors.New("unknown config key")

// OutputFormats lists the accepted values for the output key.
var OutputFormats = []string{"text", "json", "plain"}

// Config is the fully-resolved demo configuration.
type Config struct {
	ConfigFile string `mapstructure:"-"`
	Verbose    bool   `mapstructure:"verbose"`
	Output     string `mapstructure:"output"`
}

// RegisterFlags adds the global flags that feed Load to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default: $XDG_CONFIG_HOME/demo/config.yaml)")
	flags.BoolP("verbose", "v", false, "enable verbose logging (debug level)")
	flags.StringP("output", "o", "text", "output format: text, json, plain")
}

// DefaultConfigPath returns the config file path used when --config is unset.
func DefaultConfigPath() (string, error) {
	dir, err := appdir.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file named by --config (or the default path), creating
// it empty if it does not exist, and overlays environment variables and any
// flags that were set explicitly.
func Load(flags *pflag.FlagSet) (*Config, error) {
	path, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("reading --config flag: %w", err)
	}
	if path == "" {
		path, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	if err := appdir.EnsureFile(path); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("verbose", false)
	v.SetDefault("output", "text")

	for _, key := range ValidKeys() {
		if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %q: %w", f.Name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigFile = path
	return &cfg, nil
}

// ValidKeys returns every key accepted by config get/set.
func ValidKeys() []string {
	return []string{"output", "verbose"}
}

// NormalizeKey maps hyphenated flag names onto their config key form.
func NormalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

// ValidateKey reports ErrUnknownKey when key is not a config key.
func ValidateKey(key string) error {
	if !slices.Contains(ValidKeys(), NormalizeKey(key)) {
		return fmt.Errorf("%w: %q (valid keys: %s)", ErrUnknownKey, key, strings.Join(ValidKeys(), ", "))
	}
	return nil
}

// ParseValue converts a string from the command line into the typed value
// stored under key in the config file.
func ParseValue(key, value string) (any, error) {
	key = NormalizeKey(key)
	switch key {
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %s: want true or false", value, key)
		}
		return b, nil
	case "output":
		if !slices.Contains(OutputFormats, value) {
			return nil, fmt.Errorf("invalid value %q for %s: must be one of %s", value, key, strings.Join(OutputFormats, ", "))
		}
		return value, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// Get returns the effective value of key as a string.
func (c *Config) Get(key string) (string, error) {
	switch NormalizeKey(key) {
	case "verbose":
		return strconv.FormatBool(c.Verbose), nil
	case "output":
		return c.Output, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}
