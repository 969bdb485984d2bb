// Package db provides database connectivity and operations
package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/apptrack/apptrack/config"
	"github.com/apptrack/apptrack/internal/db/models"
)

// Supported database drivers
const (
	// DriverSQLite stores records in a local file, the default for a
	// single-user deployment
	DriverSQLite = "sqlite"
	// DriverPostgres connects to a PostgreSQL server
	DriverPostgres = "postgres"
)

// Database configuration constants
const (
	// DefaultSQLitePath is the default path of the sqlite database file
	DefaultSQLitePath = "applications.db"
	// DefaultHost is the default database host
	DefaultHost = "localhost"
	// DefaultPort is the default database port
	DefaultPort = 5432
	// DefaultUser is the default database user
	DefaultUser = "postgres"
	// DefaultPassword is the default database password
	DefaultPassword = "postgres"
	// DefaultDBName is the default database name
	DefaultDBName = "apptrack"
)

// Options represents database connection configuration options
type Options struct {
	Driver     string
	Path       string // sqlite only
	Host       string
	User       string
	Password   string
	DBName     string
	Port       int
	SSLEnabled bool
	LogLevel   logger.LogLevel
}

// OptionsFromEnv builds connection options from environment variables
func OptionsFromEnv() Options {
	opts := Options{
		Driver:   config.GetEnv("DB_DRIVER", DriverSQLite),
		Path:     config.GetEnv("DB_PATH", DefaultSQLitePath),
		Host:     config.GetEnv("DB_HOST", DefaultHost),
		User:     config.GetEnv("DB_USER", DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", DefaultDBName),
		Port:     DefaultPort,
	}
	if port := config.GetEnv("DB_PORT", ""); port != "" {
		if _, err := fmt.Sscanf(port, "%d", &opts.Port); err != nil {
			log.Printf("Warning: invalid DB_PORT %q, using %d", port, DefaultPort)
			opts.Port = DefaultPort
		}
	}
	opts.SSLEnabled = config.GetEnv("DB_SSL", "") == "true"
	return opts
}

// New creates a new database connection with the given options and runs
// the schema migration for the applications table
func New(opts Options) (*gorm.DB, error) {
	opts = setDefaults(opts)

	// Configure custom logger to ignore record not found errors
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	gormConfig := &gorm.Config{
		Logger: newLogger,
	}

	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(opts.Path)
	case DriverPostgres:
		sslMode := "disable"
		if opts.SSLEnabled {
			sslMode = "enable"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			opts.Host, opts.User, opts.Password, opts.DBName, opts.Port, sslMode)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", opts.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Application{})
}

func setDefaults(opts Options) Options {
	if opts.Driver == "" {
		opts.Driver = DriverSQLite
	}
	if opts.Path == "" {
		opts.Path = DefaultSQLitePath
	}
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.User == "" {
		opts.User = DefaultUser
	}
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	if opts.DBName == "" {
		opts.DBName = DefaultDBName
	}
	return opts
}
