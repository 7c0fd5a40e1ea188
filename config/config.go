// config/config.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds everything the studylink CLI needs: runtime settings plus the
// database connection parameters. The DSN carries host, user, password, and
// database name; it is a configuration input, never hard-coded.
type Config struct {
	// runtime
	Env      string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …

	// database
	DBDriver         string        `mapstructure:"db_driver"` // mysql | sqlite | postgres
	DBDSN            string        `mapstructure:"db_dsn"`
	DBConnectTimeout time.Duration `mapstructure:"db_connect_timeout"`

	// blob table
	ImageTable string `mapstructure:"image_table"`
}

// Dump returns a pretty, redacted JSON string of the config for debugging.
// The DSN is redacted because it can carry credentials; use at debug level only.
func (c Config) Dump() string {
	cp := c
	if cp.DBDSN != "" {
		cp.DBDSN = "[REDACTED]"
	}
	b, _ := json.MarshalIndent(cp, "", "  ")
	return string(b)
}

// Load merges defaults → config.* file(s) → env vars → explicit flags into one Config.
// Final precedence (highest wins): flags(explicit) > env > config > defaults.
func Load(logger *zap.Logger) (*Config, error) {
	// 0) Optionally load .env (safe: real env still wins over .env)
	if err := godotenv.Load(); err == nil && logger != nil {
		logger.Info("Loaded .env file")
	}

	// 1) Define flags (only *explicitly set* flags will override)
	pflag.String("env", "dev", `Runtime environment "dev"|"prod"`)
	pflag.String("log_level", "debug", "Log level")

	pflag.String("db_driver", "mysql", "Database driver: mysql, sqlite, or postgres")
	pflag.String("db_dsn", "", "Database connection string (driver-specific DSN)")
	pflag.String("db_connect_timeout", "10s", `Startup timeout for DB connection (e.g., "10s", "30s")`)

	pflag.String("image_table", "image_store", "Table name for stored blobs")
	pflag.Parse()

	// 2) Viper + env
	v := viper.New()
	v.SetEnvPrefix("STUDYLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Bind env for all keys so Unmarshal sees them.
	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	// 3) Optional config.* files (yaml|yml|json|toml)
	for _, ext := range [...]string{"yaml", "yml", "json", "toml"} {
		file := "config." + ext
		if _, err := os.Stat(file); err != nil {
			continue
		}
		b, err := os.ReadFile(file)
		if err != nil {
			if logger != nil {
				logger.Warn("cannot read config file", zap.String("file", file), zap.Error(err))
			}
			continue
		}
		v.SetConfigType(ext)
		if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
			if logger != nil {
				logger.Warn("cannot decode config file", zap.String("file", file), zap.Error(err))
			}
			continue
		}
		if logger != nil {
			logger.Info("Loaded config file", zap.String("file", file))
		}
	}

	// 4) Defaults (lowest precedence)
	setDefaults(v)

	// 5) Apply *explicit* flags (highest precedence)
	pflag.CommandLine.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = v.BindPFlag(f.Name, f)
		}
	})

	// 6) Build struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse duration (accepts "10s" strings or plain seconds)
	dur, err := parseDurationFlexible(v.Get("db_connect_timeout"), 10*time.Second)
	if err != nil && logger != nil {
		logger.Warn("invalid db_connect_timeout; using default 10s",
			zap.Any("value", v.Get("db_connect_timeout")), zap.Error(err))
	}
	cfg.DBConnectTimeout = dur

	// 7) Validate
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func allKeys() []string {
	return []string{
		"env", "log_level",
		"db_driver", "db_dsn", "db_connect_timeout",
		"image_table",
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "debug")

	v.SetDefault("db_driver", "mysql")
	v.SetDefault("db_dsn", "")
	v.SetDefault("db_connect_timeout", "10s")

	v.SetDefault("image_table", "image_store")
}

func validate(cfg Config) error {
	switch cfg.DBDriver {
	case "mysql", "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported db_driver %q (want mysql, sqlite, or postgres)", cfg.DBDriver)
	}
	if cfg.ImageTable == "" {
		return fmt.Errorf("image_table must not be empty")
	}
	return nil
}
