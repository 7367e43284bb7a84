package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // register the pure-Go "sqlite" driver

	"github.com/katalvlaran/gmap/codec"
	"github.com/katalvlaran/gmap/core"
)

// ErrNotFound indicates no map or dictionary exists under the name.
var ErrNotFound = errors.New("store: not found")

// Store is a SQLite-backed repository of named maps and their orbit
// dictionaries.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	s := &Store{db: db}
	if err = s.migrate(); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		name       TEXT PRIMARY KEY,
		dimension  INTEGER NOT NULL,
		alpha      TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS dicts (
		map_name   TEXT NOT NULL,
		name       TEXT NOT NULL,
		data       TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (map_name, name),
		FOREIGN KEY (map_name) REFERENCES maps(name) ON DELETE CASCADE
	);
	`
	_, err := s.db.Exec(schema)

	return err
}

// SaveMap stores m under name, replacing any previous snapshot.
func (s *Store) SaveMap(ctx context.Context, name string, m *core.DartMap) error {
	blob, err := codec.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("store: marshal map %q: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO maps (name, dimension, alpha, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			dimension = excluded.dimension,
			alpha = excluded.alpha,
			updated_at = CURRENT_TIMESTAMP
	`, name, m.Dimension(), string(blob))
	if err != nil {
		return fmt.Errorf("store: save map %q: %w", name, err)
	}

	return nil
}

// LoadMap reads the map stored under name. The flat form is decoded by
// codec.UnmarshalMap, so the returned map has passed the full validity
// check. Returns ErrNotFound for an unknown name.
func (s *Store) LoadMap(ctx context.Context, name string) (*core.DartMap, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT alpha FROM maps WHERE name = ?`, name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: map %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load map %q: %w", name, err)
	}
	m, err := codec.UnmarshalMap([]byte(blob))
	if err != nil {
		return nil, fmt.Errorf("store: map %q: %w", name, err)
	}

	return m, nil
}

// ListMaps returns the names of all stored maps in lexicographic order.
func (s *Store) ListMaps(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM maps ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list maps: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: list maps: %w", err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list maps: %w", err)
	}

	return names, nil
}

// DeleteMap removes the named map and its dictionaries.
// Returns ErrNotFound when nothing was stored under name.
func (s *Store) DeleteMap(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM dicts WHERE map_name = ?`, name); err != nil {
		return fmt.Errorf("store: delete map %q: %w", name, err)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM maps WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("store: delete map %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("store: map %q: %w", name, ErrNotFound)
	}

	return nil
}

// SaveDict stores od under (mapName, dictName), replacing any previous
// snapshot.
func (s *Store) SaveDict(ctx context.Context, mapName, dictName string, od *core.OrbitDict) error {
	blob, err := codec.MarshalOrbitDict(od)
	if err != nil {
		return fmt.Errorf("store: marshal dict %q/%q: %w", mapName, dictName, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO dicts (map_name, name, data, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(map_name, name) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`, mapName, dictName, string(blob))
	if err != nil {
		return fmt.Errorf("store: save dict %q/%q: %w", mapName, dictName, err)
	}

	return nil
}

// LoadDict reads the orbit dictionary stored under (mapName, dictName).
// Returns ErrNotFound for an unknown pair.
func (s *Store) LoadDict(ctx context.Context, mapName, dictName string) (*core.OrbitDict, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM dicts WHERE map_name = ? AND name = ?`,
		mapName, dictName).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: dict %q/%q: %w", mapName, dictName, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load dict %q/%q: %w", mapName, dictName, err)
	}
	od, err := codec.UnmarshalOrbitDict([]byte(blob))
	if err != nil {
		return nil, fmt.Errorf("store: dict %q/%q: %w", mapName, dictName, err)
	}

	return od, nil
}
