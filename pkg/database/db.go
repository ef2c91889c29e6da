package database

import (
	"fmt"

	"github.com/valentineezeh/leader-are-readers/config"
	"github.com/valentineezeh/leader-are-readers/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the mysql pool. Unique-key violations come back as gorm.ErrDuplicatedKey.
func NewDB(conf *config.Config) (*gorm.DB, error) {
	gc := &gorm.Config{TranslateError: true}
	if !conf.Debug() {
		gc.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), gc)
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.MySQL.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpenConns)
	}
	if conf.MySQL.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdleConns)
	}

	log.L.Info("connect database success", zap.String("database", conf.MySQL.Database))
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
