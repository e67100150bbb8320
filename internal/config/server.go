package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig holds the settings for the HTTP API process. Values come from
// an optional server.yaml plus QR_-prefixed environment variables, env taking
// precedence.
type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	Env        string `mapstructure:"env"` // "development" or "production"
	PricesFile string `mapstructure:"prices_file"`

	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "text"
}

// LoadServer reads server configuration. path may be empty, in which case
// only defaults and environment variables apply.
func LoadServer(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 8080)
	v.SetDefault("env", "development")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetEnvPrefix("QR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
