// Package db opens the gorm connection for the configured SQL driver.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wetube_backend/internal/feature/auth/adapters"
)

// Supported values of DB_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Config holds the database connection settings.
type Config struct {
	Driver        string `env:"DB_DRIVER" envDefault:"mysql"`
	User          string `env:"DB_USER"`
	Password      string `env:"DB_PASSWORD"`
	Name          string `env:"DB_NAME"`
	Host          string `env:"DB_HOST" envDefault:"localhost"`
	Port          string `env:"DB_PORT"`
	InstanceName  string `env:"INSTANCE_CONNECTION_NAME"` // Cloud SQL unix socket, takes precedence over Host/Port
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"wetube.db"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"false"`
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse db config: %w", err)
	}
	return cfg, nil
}

// BuildDSN returns the driver-specific DSN for cfg.
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case DriverPostgres:
		host, port := cfg.Host, cfg.Port
		if cfg.InstanceName != "" {
			host = "/cloudsql/" + cfg.InstanceName
		}
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			host, cfg.User, cfg.Password, cfg.Name, port)
	case DriverSQLite:
		return cfg.SQLitePath
	default:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		port := cfg.Port
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, port, cfg.Name)
	}
}

// NewOpener returns the Opener of the configured driver.
// Driver errors are translated so unique violations surface as gorm.ErrDuplicatedKey.
func NewOpener(driver string) (Opener, error) {
	var dialect func(string) gorm.Dialector
	switch driver {
	case DriverMySQL, "":
		dialect = gmysql.Open
	case DriverPostgres:
		dialect = postgres.Open
	case DriverSQLite:
		dialect = sqlite.Open
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(dialect(dsn), &gorm.Config{TranslateError: true})
	}, nil
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// OpenDB connects with retry and runs the user/session migrations when enabled.
func OpenDB(cfg Config) (*gorm.DB, error) {
	open, err := NewOpener(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), connectTimeout, open)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	slog.Info("DB connection successful", "driver", cfg.Driver)
	return db, nil
}

// Migrate creates or updates the users and sessions tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&adapters.UserModel{}, &adapters.SessionModel{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
