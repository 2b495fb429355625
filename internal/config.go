package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ToySQLConfig struct {
	AppName string `mapstructure:"app_name"`

	Server struct {
		Addr  string `mapstructure:"addr"`
		Debug bool   `mapstructure:"debug"`
	} `mapstructure:"server"`

	Auth struct {
		Enabled   bool   `mapstructure:"enabled"`
		JWTSecret string `mapstructure:"jwt_secret"`
		Issuer    string `mapstructure:"issuer"`
		Audience  string `mapstructure:"audience"`
	} `mapstructure:"auth"`

	Engine struct {
		StatementCacheSize int `mapstructure:"statement_cache_size"`
	} `mapstructure:"engine"`

	Client struct {
		History    string `mapstructure:"history"`
		HistoryMax int    `mapstructure:"history_max"`
	} `mapstructure:"client"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "toysql")
	v.SetDefault("server.addr", "127.0.0.1:54329")
	v.SetDefault("server.debug", false)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "toysql")
	v.SetDefault("auth.audience", "toysql-clients")
	v.SetDefault("engine.statement_cache_size", 128)
	v.SetDefault("client.history", ".toysql_history")
	v.SetDefault("client.history_max", 1000)
}

// LoadConfig reads a YAML config file. An empty path yields the defaults.
// Any key can be overridden from the environment, e.g. TOYSQL_SERVER_ADDR.
func LoadConfig(path string) (*ToySQLConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TOYSQL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg ToySQLConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth.enabled requires auth.jwt_secret")
	}
	if cfg.Engine.StatementCacheSize < 0 {
		return nil, fmt.Errorf("config: engine.statement_cache_size must be >= 0, got %d",
			cfg.Engine.StatementCacheSize)
	}

	return &cfg, nil
}
