package gormstore

import (
	"log/slog"
	"strings"

	"postboard/config"
	"postboard/internal/errors"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

// connect opens the configured driver. Postgres connections, read replicas and
// pool limits come from go-lib; SQLite is opened directly.
func connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	dbCfg := cfg.Database

	switch dbCfg.Driver {
	case config.DriverPostgres:
		if dbCfg.Postgres == nil {
			return nil, errors.New("postgres configuration is missing")
		}

		db, err := pgLib.New(dbCfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
		db.Config.TranslateError = true

		return db.Session(&gorm.Session{
			// Disable GORM's per-statement implicit transaction.
			// Multi-step atomic operations use txManager.Execute explicitly.
			SkipDefaultTransaction: true,
			Logger:                 newGormSlogLogger(logger, cfg),
		}), nil

	case config.DriverSQLite, "":
		db, err := gorm.Open(sqlite.Open(sqliteDSN(dbCfg.SQLitePath)), &gorm.Config{
			SkipDefaultTransaction: true,
			TranslateError:         true,
			Logger:                 newGormSlogLogger(logger, cfg),
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open sqlite database")
		}

		return db, nil

	default:
		return nil, errors.Errorf("unsupported database driver %q", dbCfg.Driver)
	}
}

// sqliteDSN enables foreign keys so cascading deletes behave like Postgres.
func sqliteDSN(path string) string {
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if strings.Contains(path, "?") {
		return path + "&" + pragmas
	}

	return path + "?" + pragmas
}
