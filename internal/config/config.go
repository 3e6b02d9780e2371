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
	Listen           string
	IndexerURL       string
	IndexerKey       string
	RedisAddr        string
	RedisPassword    string
	PostgresDSN      string
	RateLimitEnabled bool
	RateLimitWindow  time.Duration
	APIKeys          map[string]int
	PageSize         int
	MaxPages         int
	MaxRetries       int
	RetryBackoff     time.Duration
	PriceCacheTTL    time.Duration
	LogLevel         string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WALLETSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen", ":8080")
	v.SetDefault("redis-addr", "localhost:6379")
	v.SetDefault("rate-limit-enabled", true)
	v.SetDefault("rate-limit-window", time.Minute)
	v.SetDefault("page-size", 1000)
	v.SetDefault("max-pages", 10000)
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", time.Duration(0))
	v.SetDefault("price-cache-ttl", 5*time.Minute)
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
		Listen:           v.GetString("listen"),
		IndexerURL:       v.GetString("indexer-url"),
		IndexerKey:       v.GetString("indexer-key"),
		RedisAddr:        v.GetString("redis-addr"),
		RedisPassword:    v.GetString("redis-password"),
		PostgresDSN:      v.GetString("pg-dsn"),
		RateLimitEnabled: v.GetBool("rate-limit-enabled"),
		RateLimitWindow:  v.GetDuration("rate-limit-window"),
		APIKeys:          getIntMap(v, "api-keys"),
		PageSize:         v.GetInt("page-size"),
		MaxPages:         v.GetInt("max-pages"),
		MaxRetries:       v.GetInt("max-retries"),
		RetryBackoff:     v.GetDuration("retry-backoff"),
		PriceCacheTTL:    v.GetDuration("price-cache-ttl"),
		LogLevel:         v.GetString("log-level"),
	}

	if cfg.IndexerURL == "" {
		return Config{}, fmt.Errorf("indexer-url is required")
	}

	return cfg, nil
}

func getIntMap(v *viper.Viper, key string) map[string]int {
	if !v.IsSet(key) {
		return nil
	}

	raw := v.GetStringMap(key)
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]int, len(raw))
	for name, val := range raw {
		switch typed := val.(type) {
		case int:
			out[name] = typed
		case int64:
			out[name] = int(typed)
		case float64:
			out[name] = int(typed)
		case string:
			var parsed int
			if _, err := fmt.Sscanf(strings.TrimSpace(typed), "%d", &parsed); err == nil {
				out[name] = parsed
			}
		}
	}
	return out
}
