package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

// InitDB اتصال به دیتابیس MySQL را راه‌اندازی می‌کند
func InitDB(cfg *Config) (*gorm.DB, error) {
	// DB_DSN must carry parseTime=true for DATETIME columns
	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}
	if err := configurePool(db); err != nil {
		return nil, err
	}
	Logger.Info("Database connected")
	return db, nil
}

// configurePool تنظیم استخر اتصال‌ها
func configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("error getting raw DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	return nil
}
