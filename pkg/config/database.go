package config

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB holds the database connection
type DB struct {
	Gorm *gorm.DB
	log  *logrus.Logger
}

// InitDB opens the relational store. PostgreSQL when POSTGRES_CONN_STR is
// set, otherwise a local sqlite file, matching the development default.
func InitDB(cfg *Config, log *logrus.Logger) (*DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.PostgresURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Info("connected to database")
	return &DB{Gorm: db, log: log}, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	sqlDB, err := db.Gorm.DB()
	if err != nil {
		db.log.WithError(err).Error("error getting SQL DB from GORM")
		return
	}
	if err := sqlDB.Close(); err != nil {
		db.log.WithError(err).Error("error closing database connection")
		return
	}
	db.log.Info("database connection closed")
}
