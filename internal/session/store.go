// Package session is the on-device key-value store: it keeps the opaque
// session marker, the serialized user record, and the notification fallback
// flag between runs. Reads and writes are last-writer-wins; no locking.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

const (
	KeyToken         = "token"
	KeyUser          = "user"
	KeyNotifications = "notifications"
)

type Record struct {
	bun.BaseModel `bun:"table:session_records"`

	Key       string    `bun:"key,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type Store struct {
	db *bun.DB
}

// Open creates (or reopens) the store at the given sqlite path.
func Open(path string) (*Store, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %v", err)
	}
	store := NewStore(bun.NewDB(sqldb, sqlitedialect.New()))
	if err := store.CreateSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// NewStore wraps an existing bun handle. Tests use this with an in-memory
// database.
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*Record)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create session schema: %v", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	rec := new(Record)
	err := s.db.NewSelect().
		Model(rec).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read session key %q: %v", key, err)
	}
	return rec.Value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	rec := &Record{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	_, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to write session key %q: %v", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.NewDelete().
		Model((*Record)(nil)).
		Where("key = ?", key).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session key %q: %v", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
