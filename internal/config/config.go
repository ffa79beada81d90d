package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr            string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
	}
	DB struct {
		Driver          string
		DSN             string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
		QueryTimeout    time.Duration
		BusyTimeout     time.Duration
	}
	Log struct {
		Level  string
		Format string
		Output string
	}
	Docs struct {
		ServerURL string
	}
}

// Load reads config from environment (COUNTERS_ prefix), an optional .env
// file and an optional counters.yaml.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional .env file

	v := viper.New()
	v.SetEnvPrefix("COUNTERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("counters")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	setDefaults(v)
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8000")
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "30s")
	v.SetDefault("http.shutdown_timeout", "15s")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.query_timeout", "5s")
	v.SetDefault("db.busy_timeout", "5s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("docs.server_url", "http://127.0.0.1:8000/")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.DB.MaxOpenConns = v.GetInt("db.max_open_conns")
	cfg.DB.MaxIdleConns = v.GetInt("db.max_idle_conns")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Log.Output = v.GetString("log.output")
	cfg.Docs.ServerURL = v.GetString("docs.server_url")

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"http.read_timeout", &cfg.HTTP.ReadTimeout},
		{"http.write_timeout", &cfg.HTTP.WriteTimeout},
		{"http.shutdown_timeout", &cfg.HTTP.ShutdownTimeout},
		{"db.conn_max_lifetime", &cfg.DB.ConnMaxLifetime},
		{"db.query_timeout", &cfg.DB.QueryTimeout},
		{"db.busy_timeout", &cfg.DB.BusyTimeout},
	}
	for _, d := range durations {
		parsed, err := time.ParseDuration(v.GetString(d.key))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envName(d.key), err)
		}
		*d.dst = parsed
	}

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("COUNTERS_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("COUNTERS_DB_DSN is required")
	}
	if cfg.DB.MaxOpenConns < 1 {
		return nil, fmt.Errorf("COUNTERS_DB_MAX_OPEN_CONNS must be at least 1")
	}
	if cfg.DB.MaxIdleConns > cfg.DB.MaxOpenConns {
		cfg.DB.MaxIdleConns = cfg.DB.MaxOpenConns
	}
	if cfg.DB.BusyTimeout < 0 {
		return nil, fmt.Errorf("COUNTERS_DB_BUSY_TIMEOUT must not be negative")
	}
	if cfg.DB.QueryTimeout <= 0 {
		return nil, fmt.Errorf("COUNTERS_DB_QUERY_TIMEOUT must be positive")
	}

	return cfg, nil
}

func envName(key string) string {
	return "COUNTERS_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
