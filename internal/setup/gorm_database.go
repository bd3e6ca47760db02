package setup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bornholm/todo/internal/config"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

var sqlitePragmas = []string{
	"PRAGMA journal_mode=wal",
	"PRAGMA foreign_keys=on",
	"PRAGMA busy_timeout=5000",
}

var getGormDatabaseFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	dsn := conf.Storage.Database.DSN

	if err := ensureDatabaseDir(dsn); err != nil {
		return nil, errors.Wrapf(err, "could not create directory for database '%s'", dsn)
	}

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(slog.Level(conf.Logger.Level))),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// SQLite allows a single writer at a time
	sqlDB.SetMaxOpenConns(1)

	for _, pragma := range sqlitePragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, errors.Wrapf(err, "could not execute '%s'", pragma)
		}
	}

	slog.DebugContext(ctx, "database opened", slog.String("dsn", dsn))

	return db, nil
})

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level <= slog.LevelWarn:
		return logger.Warn
	default:
		return logger.Error
	}
}

// ensureDatabaseDir creates the parent directory of file based DSNs.
func ensureDatabaseDir(dsn string) error {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}

	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
