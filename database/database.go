package database

import (
	"log"
	"time"

	"glitchmart/config"
	"glitchmart/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the GORM SQLite database according to config.Settings,
// applies connection-pool settings and SQLite PRAGMAs, migrates the fault
// and product tables and seeds their initial rows.
func InitDB() error {
	var err error

	// Configure GORM log level
	logLevel := logger.Silent
	if config.Settings.LogLevel == "DEBUG" {
		logLevel = logger.Info
	}

	dsn := buildSQLiteDSN(config.Settings.DatabaseURL, config.Settings)
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.New(
			log.New(log.Writer(), "\r\n", log.LstdFlags),
			logger.Config{
				LogLevel: logLevel,
			},
		),
	})
	if err != nil {
		return err
	}

	// Get underlying SQL DB and configure the connection pool
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	pool := currentSQLitePoolConfig(config.Settings)
	sqlDB.SetMaxIdleConns(pool.maxIdleConns)
	sqlDB.SetMaxOpenConns(pool.maxOpenConns)
	sqlDB.SetConnMaxIdleTime(time.Duration(pool.maxIdleSec) * time.Second)
	sqlDB.SetConnMaxLifetime(time.Duration(pool.maxLifeSec) * time.Second)

	// Apply PRAGMAs again as a best-effort startup initialization (useful for
	// existing DB files). Connection URL parameters cover new connections.
	if config.Settings.SQLitePragmasEnabled {
		if config.Settings.SQLiteBusyTimeoutMS > 0 {
			DB.Exec("PRAGMA busy_timeout = ?", config.Settings.SQLiteBusyTimeoutMS)
		}
		if journalMode := normalizeSQLiteJournalMode(config.Settings.SQLiteJournalMode); journalMode != "" {
			DB.Exec("PRAGMA journal_mode = " + journalMode)
		}
		if synchronous := normalizeSQLiteSynchronous(config.Settings.SQLiteSynchronous); synchronous != "" {
			DB.Exec("PRAGMA synchronous = " + synchronous)
		}
		if config.Settings.SQLiteForeignKeys {
			DB.Exec("PRAGMA foreign_keys = ON")
		} else {
			DB.Exec("PRAGMA foreign_keys = OFF")
		}
	}

	if err := Migrate(DB); err != nil {
		return err
	}

	log.Println("Database initialized successfully")
	return nil
}

// Migrate runs automigrations and seeds the fault rows and demo catalog.
// Split out of InitDB so tests can run it against their own connections.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Fault{}, &models.Product{}); err != nil {
		return err
	}
	return seed(db)
}

// CloseDB closes the database connection and releases resources
func CloseDB() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	log.Println("Closing database connection...")
	return sqlDB.Close()
}
