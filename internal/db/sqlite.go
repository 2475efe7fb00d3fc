package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofrs/flock"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database bundles the GORM handle with the process-exclusive lock that
// guards the SQLite file. SQLite tolerates one writer; the lockfile keeps a
// second moveday process from opening the same database.
type Database struct {
	*gorm.DB
	lock *flock.Flock
}

func Open(dbPath string) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	fileLock := flock.New(dbPath + ".lock")
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire db lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("database %s is in use by another process", dbPath)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		_ = fileLock.Unlock()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		_ = fileLock.Unlock()
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return &Database{DB: database, lock: fileLock}, nil
}

func (database *Database) Close() error {
	sqlDB, err := database.DB.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
	if database.lock != nil {
		return database.lock.Unlock()
	}
	return nil
}
