package main

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/palepusrinivas/guava-adminpanel-sub002/entity"
)

// setupDatabase opens the console's own store: admin sessions and login lockouts.
func setupDatabase(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&entity.AdminSession{},
		&entity.LoginLockout{},
	); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info("database ready", zap.String("action", "db_migrate"))
	return db, nil
}
