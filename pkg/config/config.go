// Package config loads service settings from config.toml and the
// environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. OCTOSUPPLY_APP_PORT.
const EnvPrefix = "OCTOSUPPLY"

// Config holds all service configuration.
type Config struct {
	App       AppConfig
	Log       LogConfig
	Store     StoreConfig
	Redis     RedisConfig
	Auth      AuthConfig
	HTTP      HTTPConfig
	Notify    NotifyConfig
	Telemetry TelemetryConfig
}

// AppConfig holds process level settings.
type AppConfig struct {
	Name    string `validate:"required"`
	Env     string
	Port    string `validate:"required,numeric"`
	TLSCert string `validate:"required_with=TLSKey"`
	TLSKey  string `validate:"required_with=TLSCert"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `validate:"oneof=debug info warn warning error"`
}

// StoreConfig selects where collections live.
type StoreConfig struct {
	Backend     string `validate:"oneof=memory postgres sqlite redis"`
	Seed        bool
	DatabaseURL string `validate:"required_if=Backend postgres"`
	SQLitePath  string `validate:"required_if=Backend sqlite"`
	KeyPrefix   string
}

// RedisConfig holds the Redis connection used by the redis store, sessions
// and the publish notifier.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int `validate:"gte=0"`
}

// AuthConfig controls the optional session guard on write routes.
type AuthConfig struct {
	Enabled    bool
	SessionTTL time.Duration `validate:"gt=0"`
}

// HTTPConfig holds server settings.
type HTTPConfig struct {
	ReadTimeout    time.Duration `validate:"gt=0"`
	WriteTimeout   time.Duration `validate:"gt=0"`
	IdleTimeout    time.Duration `validate:"gt=0"`
	MaxBodySize    int64         `validate:"gt=0"`
	RateLimitRPS   float64       `validate:"gte=0"`
	RateLimitBurst int           `validate:"gte=0"`
	CORSOrigins    []string
}

// NotifyConfig lists the delivery notification actions callers may pick.
type NotifyConfig struct {
	Actions []string `validate:"dive,oneof=log publish"`
	Channel string   `validate:"required"`
}

// TelemetryConfig holds tracing settings.
type TelemetryConfig struct {
	ServiceName string  `validate:"required"`
	Host        string
	Probability float64 `validate:"gte=0,lte=1"`
	Insecure    bool
	// Stdout prints finished spans to stderr.
	Stdout bool
}

// Load reads configuration. Priority, highest first: OCTOSUPPLY_* env vars,
// legacy env vars (PORT, DATABASE_URL, REDIS_ADDR, API_CORS_ORIGINS),
// config.toml, built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/octosupply")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	legacy := map[string]string{
		"app.port":           "PORT",
		"store.database_url": "DATABASE_URL",
		"redis.addr":         "REDIS_ADDR",
		"http.cors_origins":  "API_CORS_ORIGINS",
		"telemetry.host":     "OTEL_HOST",
	}
	for key, env := range legacy {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, err
		}
	}
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Env:     v.GetString("app.env"),
			Port:    v.GetString("app.port"),
			TLSCert: v.GetString("app.tls_cert"),
			TLSKey:  v.GetString("app.tls_key"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
		Store: StoreConfig{
			Backend:     v.GetString("store.backend"),
			Seed:        v.GetBool("store.seed"),
			DatabaseURL: v.GetString("store.database_url"),
			SQLitePath:  v.GetString("store.sqlite_path"),
			KeyPrefix:   v.GetString("store.key_prefix"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			Enabled:    v.GetBool("auth.enabled"),
			SessionTTL: v.GetDuration("auth.session_ttl"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:    v.GetDuration("http.read_timeout"),
			WriteTimeout:   v.GetDuration("http.write_timeout"),
			IdleTimeout:    v.GetDuration("http.idle_timeout"),
			MaxBodySize:    v.GetInt64("http.max_body_size"),
			RateLimitRPS:   v.GetFloat64("http.rate_limit_rps"),
			RateLimitBurst: v.GetInt("http.rate_limit_burst"),
			CORSOrigins:    splitList(v.GetStringSlice("http.cors_origins")),
		},
		Notify: NotifyConfig{
			Actions: splitList(v.GetStringSlice("notify.actions")),
			Channel: v.GetString("notify.channel"),
		},
		Telemetry: TelemetryConfig{
			ServiceName: v.GetString("telemetry.service_name"),
			Host:        v.GetString("telemetry.host"),
			Probability: v.GetFloat64("telemetry.probability"),
			Insecure:    v.GetBool("telemetry.insecure"),
			Stdout:      v.GetBool("telemetry.stdout"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "octosupply")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3000")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.seed", true)
	v.SetDefault("store.sqlite_path", "octosupply.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.session_ttl", time.Hour)
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.max_body_size", 1<<20)
	v.SetDefault("http.rate_limit_rps", 0)
	v.SetDefault("http.rate_limit_burst", 20)
	v.SetDefault("http.cors_origins", []string{
		"http://localhost:5137",
		"http://localhost:3001",
		"https://*.app.github.dev",
	})
	v.SetDefault("notify.actions", []string{"log", "publish"})
	v.SetDefault("notify.channel", "octosupply:delivery-status")
	v.SetDefault("telemetry.service_name", "octosupply")
	v.SetDefault("telemetry.probability", 1.0)
	v.SetDefault("telemetry.insecure", true)
}

var validate = validator.New()

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// splitList accepts both list values and a single comma separated string,
// the form environment variables arrive in.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
