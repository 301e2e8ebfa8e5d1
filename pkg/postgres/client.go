// Package postgres provides PostgreSQL database infrastructure components
package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresClient defines the interface for PostgreSQL database operations
type PostgresClient interface {
	// Migrate runs auto-migration for the given models
	Migrate(dst ...any) error
	// GetDB returns the underlying gorm.DB instance
	GetDB() *gorm.DB
	// Close closes the database connection
	Close() error
}

type postgresClient struct {
	DB *gorm.DB
}

// NewPostgresClient opens a pooled connection and pings it
func NewPostgresClient(cfg Config) (PostgresClient, error) {
	loggerInterface := logger.Default.LogMode(logger.Silent)
	if cfg.Debug {
		loggerInterface = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: loggerInterface,
	})
	if err != nil {
		return nil, err
	}

	dbSQL, err := db.DB()
	if err != nil {
		return nil, err
	}

	dbSQL.SetMaxIdleConns(cfg.MaxIdleConns)
	dbSQL.SetMaxOpenConns(cfg.MaxOpenConns)
	dbSQL.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
	dbSQL.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := dbSQL.Ping(); err != nil {
		return nil, err
	}

	return &postgresClient{DB: db}, nil
}

// NewFromDB wraps an already opened gorm handle
func NewFromDB(db *gorm.DB) PostgresClient {
	return &postgresClient{DB: db}
}

// Migrate runs auto-migration for all models
func (c *postgresClient) Migrate(dst ...any) error {
	if err := c.DB.AutoMigrate(dst...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return nil
}

// GetDB returns the underlying gorm.DB instance
func (c *postgresClient) GetDB() *gorm.DB {
	return c.DB
}

// Close closes the database connection
func (c *postgresClient) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
