package database

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nexthire/job-board/internal/models"
)

// Connect opens the Postgres connection and runs migrations.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "database: connect")
	}

	log.Info("database connection established")

	if err := db.AutoMigrate(&models.Job{}); err != nil {
		return nil, errors.Wrap(err, "database: migrate")
	}

	return db, nil
}

// Ping verifies the underlying connection is still alive. Used by the
// root endpoint to report database status.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "database: unwrap sql.DB")
	}
	return errors.Wrap(sqlDB.Ping(), "database: ping")
}
