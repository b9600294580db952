package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/imgkeeper/internal/config"
	"github.com/dmitrijs2005/imgkeeper/internal/dbx"
	"github.com/dmitrijs2005/imgkeeper/internal/filex"
	"github.com/dmitrijs2005/imgkeeper/internal/migrations"
	"github.com/dmitrijs2005/imgkeeper/internal/repositories/kv"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type dialect struct {
	sqlDriver  string
	gooseName  string
	migrations fs.FS
	dir        string
	newRepo    repoFactory
}

var dialects = map[string]dialect{
	config.DriverSQLite: {
		sqlDriver:  "sqlite",
		gooseName:  "sqlite3",
		migrations: migrations.SQLite,
		dir:        "sqlite",
		newRepo:    func(db dbx.DBTX, table string) kv.Repository { return kv.NewSQLiteRepository(db, table) },
	},
	config.DriverPostgres: {
		sqlDriver:  "pgx",
		gooseName:  "postgres",
		migrations: migrations.Postgres,
		dir:        "postgres",
		newRepo:    func(db dbx.DBTX, table string) kv.Repository { return kv.NewPostgresRepository(db, table) },
	},
}

func lookupDialect(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("unsupported storage driver %q", driver)
	}
	return d, nil
}

// RunMigrations brings the schema of db up to date for the given driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	d, err := lookupDialect(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(d.migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.gooseName); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, d.dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Open connects to the database, runs migrations and returns a ready Store.
// The caller owns the store and must Close it.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	d, err := lookupDialect(driver)
	if err != nil {
		return nil, err
	}

	if driver == config.DriverSQLite && isSQLiteFilePath(dsn) {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(d.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	// SQLite allows a single writer; one connection also keeps ":memory:"
	// databases alive between calls.
	if driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if err := RunMigrations(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	return New(db, d.newRepo), nil
}

// isSQLiteFilePath reports whether dsn is a plain file path rather than an
// in-memory database or a "file:" URI.
func isSQLiteFilePath(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}
