package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "EVMKIT"

// Config defines the CLI configuration params
type Config struct {
	RPCURL   string            `json:"rpc_url" yaml:"rpc_url" hcl:"rpc_url"`
	LogLevel string            `json:"log_level" yaml:"log_level" hcl:"log_level"`
	Timeout  string            `json:"timeout" yaml:"timeout" hcl:"timeout"`
	Headers  map[string]string `json:"headers,omitempty" yaml:"headers,omitempty" hcl:"headers"`
}

// DefaultConfig returns the default CLI configuration
func DefaultConfig() *Config {
	return &Config{
		RPCURL:   "http://127.0.0.1:8545",
		LogLevel: "INFO",
		Timeout:  "30s",
	}
}

// CallTimeout parses Timeout. An empty or zero timeout means no deadline.
func (c *Config) CallTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}

	return d, nil
}

// ReadConfigFile reads the config file from the specified path, builds a Config object
// and returns it. Fields missing from the file keep their defaults.
//
// Supported file types: .json, .hcl, .yaml, .yml
func ReadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var unmarshalFunc func([]byte, interface{}) error

	switch {
	case strings.HasSuffix(path, ".hcl"):
		unmarshalFunc = hcl.Unmarshal
	case strings.HasSuffix(path, ".json"):
		unmarshalFunc = json.Unmarshal
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		unmarshalFunc = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("suffix of %s is neither hcl, json, yaml nor yml", path)
	}

	config := DefaultConfig()

	if err := unmarshalFunc(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load builds the configuration from, in increasing priority, the
// defaults, the config file at path (if any), a .env file and
// EVMKIT_* environment variables
func Load(path string) (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := ReadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		cfg = fileCfg
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if v.IsSet("rpc_url") {
		cfg.RPCURL = v.GetString("rpc_url")
	}

	if v.IsSet("log_level") {
		cfg.LogLevel = v.GetString("log_level")
	}

	if v.IsSet("timeout") {
		cfg.Timeout = v.GetString("timeout")
	}

	if _, err := cfg.CallTimeout(); err != nil {
		return nil, err
	}

	return cfg, nil
}
