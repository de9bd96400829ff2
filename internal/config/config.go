// Package config loads flightinfo settings from defaults, an optional YAML
// file and FLIGHTINFO_* environment variables
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override
	EnvPrefix = "FLIGHTINFO"

	// DefaultFileName is looked up in the working directory when no
	// explicit config file is given
	DefaultFileName = "flightinfo"

	DefaultServerName         = "Flight Info Bot"
	DefaultServerVersion      = "1.0.0"
	DefaultServerInstructions = "Use FlightInfoBot to look up departures by city."
	DefaultClientTimeout      = 15 * time.Second
)

// Config holds the resolved settings
type Config struct {
	Server  ServerConfig `mapstructure:"server"`
	Client  ClientConfig `mapstructure:"client"`
	Verbose bool         `mapstructure:"verbose"`
}

// ServerConfig describes the MCP server implementation advertised to clients
type ServerConfig struct {
	Name         string `mapstructure:"name"`
	Version      string `mapstructure:"version"`
	Instructions string `mapstructure:"instructions"`
}

// ClientConfig controls the stdio client used by `flightinfo ask`
type ClientConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.name", DefaultServerName)
	v.SetDefault("server.version", DefaultServerVersion)
	v.SetDefault("server.instructions", DefaultServerInstructions)
	v.SetDefault("client.timeout", DefaultClientTimeout)
	v.SetDefault("verbose", false)
}

// New returns a viper instance wired for flightinfo: defaults, env prefix
// and the config file search path. cfgFile overrides the search path.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(DefaultFileName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads the config file into v. A missing default file is fine;
// an explicit file that cannot be read is not.
func Read(v *viper.Viper, explicit bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !explicit && errors.As(err, &notFound) {
		return nil
	}
	return errors.Wrap(err, "failed to read config file")
}

// Load reads the config file (if any) and decodes the result
func Load(cfgFile string) (*Config, *viper.Viper, error) {
	v := New(cfgFile)
	if err := Read(v, cfgFile != ""); err != nil {
		return nil, nil, err
	}
	cfg, err := FromViper(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// FromViper decodes and validates the settings held by v
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:         DefaultServerName,
			Version:      DefaultServerVersion,
			Instructions: DefaultServerInstructions,
		},
		Client: ClientConfig{
			Timeout: DefaultClientTimeout,
		},
	}
}

// Validate checks that the settings are usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Name) == "" {
		return errors.New("server.name must not be empty")
	}
	if strings.TrimSpace(c.Server.Version) == "" {
		return errors.New("server.version must not be empty")
	}
	if c.Client.Timeout <= 0 {
		return errors.Errorf("client.timeout must be positive, got %s", c.Client.Timeout)
	}
	return nil
}
