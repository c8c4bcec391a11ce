package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Migrations holds the bundled schema migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const createMigrationsTable = `CREATE TABLE schema_migrations (
    version    VARCHAR2(255) NOT NULL,
    applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL,
    CONSTRAINT pk_schema_migrations PRIMARY KEY (version)
)`

// RunMigrations applies every *.up.sql file under migrations/ in fsys that
// has not been recorded in schema_migrations yet, in file name order.
func RunMigrations(ctx context.Context, db *sqlx.DB, fsys fs.FS, logger *zap.Logger) error {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil && !isAlreadyExists(err) {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return fmt.Errorf("could not read applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	files, err := fs.Glob(fsys, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		version := strings.TrimSuffix(strings.TrimPrefix(file, "migrations/"), ".up.sql")
		if done[version] {
			continue
		}

		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file, err)
		}

		// go-ora runs one statement per Exec.
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", version, err)
			}
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (:1)`, version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", version, err)
		}

		logger.Info("Executed migration", zap.String("version", version))
	}

	logger.Info("Migrations completed successfully", zap.Int("available", len(files)))
	return nil
}

// SplitStatements splits a script on ";" and drops empty statements.
func SplitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// isAlreadyExists matches ORA-00955 "name is already used by an existing object".
func isAlreadyExists(err error) bool {
	return strings.Contains(err.Error(), "ORA-00955")
}
