package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // CGo-free SQLite driver
)

// SQLiteStore is the embedded-store backend: every collection is one row in a
// single table, saved as a JSON document. The overwrite-whole-document contract
// is identical to FileStore.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	const schema = `
	CREATE TABLE IF NOT EXISTS collections (
		name TEXT NOT NULL PRIMARY KEY,
		doc  TEXT NOT NULL
	);`
	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(collection string, v any) error {
	var doc string
	err := s.db.QueryRow(`SELECT doc FROM collections WHERE name = ?`, collection).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", collection, err)
	}
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (s *SQLiteStore) Save(collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO collections (name, doc) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET doc = excluded.doc`,
		collection, string(data),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}
