package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Network       string
	RPCURL        string
	CacheTTL      time.Duration
	CacheCapacity int
	QueryTimeout  time.Duration
	MaxRetries    int
	RetryBackoff  time.Duration
	Addr          string
	Out           string
	PGDSN         string
	LogLevel      string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ROUTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("network", "testnet")
	v.SetDefault("cache-ttl", 30*time.Second)
	v.SetDefault("cache-capacity", 100)
	v.SetDefault("query-timeout", 5*time.Second)
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("addr", ":8080")
	v.SetDefault("out", "./data/pools.jsonl")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Network:       v.GetString("network"),
		RPCURL:        v.GetString("rpc"),
		CacheTTL:      v.GetDuration("cache-ttl"),
		CacheCapacity: v.GetInt("cache-capacity"),
		QueryTimeout:  v.GetDuration("query-timeout"),
		MaxRetries:    v.GetInt("max-retries"),
		RetryBackoff:  v.GetDuration("retry-backoff"),
		Addr:          v.GetString("addr"),
		Out:           v.GetString("out"),
		PGDSN:         v.GetString("pg-dsn"),
		LogLevel:      v.GetString("log-level"),
	}

	if _, ok := Networks[cfg.Network]; !ok {
		return Config{}, fmt.Errorf("unknown network %q", cfg.Network)
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = Networks[cfg.Network].RPCURL
	}
	if cfg.CacheTTL <= 0 {
		return Config{}, fmt.Errorf("cache ttl must be positive")
	}
	if cfg.CacheCapacity <= 0 {
		return Config{}, fmt.Errorf("cache capacity must be positive")
	}

	return cfg, nil
}
