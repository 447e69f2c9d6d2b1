package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// Migration is one versioned, additive schema change
type Migration struct {
	Version     int
	Description string
	SQL         string

	// Table and Columns describe a column-adding step. Columns already
	// present in Table are skipped, so databases created before
	// schema_migrations existed migrate cleanly.
	Table   string
	Columns []string
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "create_words_table",
		SQL: `CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			original TEXT NOT NULL,
			translation TEXT NOT NULL,
			article TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	addColumns(2, "add_spaced_repetition_fields", "words",
		"score INTEGER NOT NULL DEFAULT 0",
		"createdAt INTEGER NOT NULL DEFAULT 0",
		"lastReviewedAt INTEGER NOT NULL DEFAULT 0",
		"nextReviewAt INTEGER NOT NULL DEFAULT 0",
	),
}

func addColumns(version int, description, table string, columns ...string) Migration {
	stmts := make([]string, len(columns))
	for i, col := range columns {
		stmts[i] = addColumnSQL(table, col)
	}
	return Migration{
		Version:     version,
		Description: description,
		SQL:         strings.Join(stmts, "\n"),
		Table:       table,
		Columns:     columns,
	}
}

func addColumnSQL(table, column string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s;", table, column)
}

// Migrations returns the declared schema migrations in order
func Migrations() []Migration {
	out := make([]Migration, len(migrations))
	copy(out, migrations)
	return out
}

// Migrate applies every pending migration, each in its own transaction, and
// returns the versions it applied
func Migrate(ctx context.Context, db *sqlx.DB, logger logrus.FieldLogger) ([]int, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	var done []int
	if err := db.SelectContext(ctx, &done, `SELECT version FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}
	applied := make(map[int]bool, len(done))
	for _, v := range done {
		applied[v] = true
	}

	var versions []int
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return versions, err
		}
		logger.WithFields(logrus.Fields{
			"version":     m.Version,
			"description": m.Description,
		}).Info("applied migration")
		versions = append(versions, m.Version)
	}
	return versions, nil
}

func apply(ctx context.Context, db *sqlx.DB, m Migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
	}

	if err := applyStep(ctx, tx, m); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Description, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
		m.Version, m.Description,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	return tx.Commit()
}

func applyStep(ctx context.Context, tx *sqlx.Tx, m Migration) error {
	if len(m.Columns) == 0 {
		_, err := tx.ExecContext(ctx, m.SQL)
		return err
	}

	var existing []string
	if err := tx.SelectContext(ctx, &existing, `SELECT name FROM pragma_table_info(?)`, m.Table); err != nil {
		return fmt.Errorf("read columns of %s: %w", m.Table, err)
	}
	// SQLite column names are case-insensitive
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[strings.ToLower(name)] = true
	}

	for _, col := range m.Columns {
		name := strings.ToLower(strings.Fields(col)[0])
		if present[name] {
			continue
		}
		if _, err := tx.ExecContext(ctx, addColumnSQL(m.Table, col)); err != nil {
			return err
		}
	}
	return nil
}
