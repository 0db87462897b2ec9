// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration brings the users schema up to date at startup with
// golang-migrate, reading numbered .sql files from disk.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp applies every pending up migration found under dir.
//
// A database left dirty by an interrupted run is reported rather than
// forced; the operator decides which version is real.
func RunUp(dsn, dir string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+dir, ToPgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: open %s: %w", dir, err)
	}
	defer func() {
		sourceErr, dbErr := migrator.Close()
		if closeErr := errors.Join(sourceErr, dbErr); closeErr != nil {
			logger.Warn("migration_close_failed", slog.Any("error", closeErr))
		}
	}()
	migrator.Log = slogAdapter{logger}

	from, dirty, err := version(migrator)
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("migration: schema is dirty at version %d", from)
	}

	switch err := migrator.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("migration_up_to_date", slog.Uint64("version", uint64(from)))
		return nil
	case err != nil:
		return fmt.Errorf("migration: up from version %d: %w", from, err)
	}

	to, _, err := version(migrator)
	if err != nil {
		return err
	}
	logger.Info("migration_applied", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(to)))
	return nil
}

// version treats an empty schema as version 0.
func version(migrator *migrate.Migrate) (uint, bool, error) {
	current, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migration: read version: %w", err)
	}
	return current, dirty, nil
}

// ToPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// the pgx/v5 migrate driver registers. Anything else is returned unchanged.
func ToPgx5DSN(dsn string) string {
	scheme, rest, found := strings.Cut(dsn, "://")
	if !found || (scheme != "postgres" && scheme != "postgresql") {
		return dsn
	}
	return "pgx5://" + rest
}

// slogAdapter routes golang-migrate's progress lines to debug logs.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Printf(format string, args ...any) {
	a.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (a slogAdapter) Verbose() bool {
	return a.logger.Enabled(context.Background(), slog.LevelDebug)
}
