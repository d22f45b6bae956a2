package compendium

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/paranoidworld/internal/entities"
	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteLibrary keeps compendium packs in a SQLite file
type SQLiteLibrary struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenSQLite opens or creates the compendium database at path. Use
// ":memory:" for a throwaway library.
func OpenSQLite(path string, logger *zap.Logger) (*SQLiteLibrary, error) {
	if strings.TrimSpace(path) == "" {
		return nil, pwerr.InvalidArgument("compendium path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps ":memory:" databases alive and serialises writers
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply compendium schema: %w", err)
	}

	return &SQLiteLibrary{db: db, logger: logger.Named("compendium.sqlite")}, nil
}

// Close closes the database handle
func (l *SQLiteLibrary) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// Import inserts items into pack id. Items without an id are rejected, and an
// id already used by another pack is an already exists error.
func (l *SQLiteLibrary) Import(ctx context.Context, id string, items []*entities.Item) error {
	if id == "" {
		return pwerr.InvalidArgument("pack id is required")
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return pwerr.Wrap(err, "failed to begin import")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO compendium_items (id, pack, name, type, data) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, type = excluded.type, data = excluded.data
		 WHERE compendium_items.pack = excluded.pack`)
	if err != nil {
		return pwerr.Wrap(err, "failed to prepare import")
	}
	defer stmt.Close()

	for _, item := range items {
		if item == nil {
			continue
		}
		if item.ID == "" {
			return pwerr.InvalidArgumentf("item %q in pack %s has no id", item.Name, id).WithMeta("pack", id)
		}

		clone := item.Clone()
		clone.Normalize()
		if err := clone.Validate(); err != nil {
			return pwerr.Validationf("invalid item in pack %s: %v", id, err).WithMeta("pack", id)
		}

		data, err := json.Marshal(clone)
		if err != nil {
			return pwerr.Wrap(err, "failed to encode item").WithMeta("item_id", clone.ID)
		}

		res, err := stmt.ExecContext(ctx, clone.ID, id, clone.Name, string(clone.Type), string(data))
		if err != nil {
			if isUniqueViolation(err) {
				return pwerr.AlreadyExistsf("item '%s' already exists", clone.ID).WithMeta("item_id", clone.ID)
			}
			return pwerr.Wrap(err, "failed to import item").WithMeta("item_id", clone.ID)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return pwerr.AlreadyExistsf("item '%s' belongs to another pack", clone.ID).
				WithMeta("item_id", clone.ID).
				WithMeta("pack", id)
		}
	}

	if err := tx.Commit(); err != nil {
		return pwerr.Wrap(err, "failed to commit import")
	}

	l.logger.Debug("imported pack", zap.String("pack", id), zap.Int("items", len(items)))
	return nil
}

// ImportLibrary copies every pack of src into the database
func (l *SQLiteLibrary) ImportLibrary(ctx context.Context, src Library) error {
	ids, err := src.Packs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		items, err := src.Pack(ctx, id)
		if err != nil {
			return err
		}
		if err := l.Import(ctx, id, items); err != nil {
			return err
		}
	}
	return nil
}

// Pack returns the items of pack id ordered by name
func (l *SQLiteLibrary) Pack(ctx context.Context, id string) ([]*entities.Item, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT data FROM compendium_items WHERE pack = ? ORDER BY name, id`, id)
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to query pack").WithMeta("pack", id)
	}
	defer rows.Close()

	var items []*entities.Item
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, pwerr.Wrap(err, "failed to scan item").WithMeta("pack", id)
		}
		var item entities.Item
		if err := json.Unmarshal([]byte(data), &item); err != nil {
			return nil, pwerr.Wrap(err, "failed to decode item").WithMeta("pack", id)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, pwerr.Wrap(err, "failed to read pack").WithMeta("pack", id)
	}

	if len(items) == 0 {
		return nil, pwerr.NotFoundf("pack '%s' not found", id).WithMeta("pack", id)
	}
	return items, nil
}

// Packs lists pack ids
func (l *SQLiteLibrary) Packs(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT DISTINCT pack FROM compendium_items ORDER BY pack`)
	if err != nil {
		return nil, pwerr.Wrap(err, "failed to list packs")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, pwerr.Wrap(err, "failed to scan pack")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ Library = (*SQLiteLibrary)(nil)
var _ Library = (*StaticLibrary)(nil)
