package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

type record struct {
	bun.BaseModel `bun:"table:records"`

	Name  string `bun:"name,pk"`
	Value string `bun:"value,notnull"`
}

// Store is a SQLite-backed implementation of app.RecordStore. Records live
// in a single `records` table keyed by name; the schema is managed by the
// migrations sub-package.
type Store struct {
	db *bun.DB
}

func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, name string) (string, bool, error) {
	rec := new(record)
	err := s.db.NewSelect().Model(rec).Where("name = ?", name).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select record %s: %w", name, err)
	}
	return rec.Value, true, nil
}

func (s *Store) Set(ctx context.Context, name, value string) error {
	rec := &record{Name: name, Value: value}
	_, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (name) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert record %s: %w", name, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.db.NewDelete().
		Model((*record)(nil)).
		Where("name = ?", name).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", name, err)
	}
	return nil
}
