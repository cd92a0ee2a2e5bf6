package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"contact-map-service/internal/domain"
)

// SQLite-backed implementation of the ContactStore port.
// The whole contact list is serialized as one JSON array and kept under a
// single key in a key/value table; every Save overwrites the prior blob.
type SQLiteStore struct {
	DB *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStoreQuery := `
	CREATE TABLE IF NOT EXISTS contact_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	if _, err := tx.Exec(createStoreQuery); err != nil {
		return fmt.Errorf("init schema: create contact_store: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Load returns the saved contact list, or the seed list when no blob exists
// or the stored blob fails to parse.
func (s *SQLiteStore) Load(ctx context.Context) ([]domain.Contact, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite store: DB is nil")
	}

	query := `
	SELECT value
	FROM contact_store
	WHERE key = ?;
	`

	var blob string
	err := s.DB.QueryRowContext(ctx, query, StoreKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return SeedContacts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load contacts: query contact_store: %w", err)
	}

	var contacts []domain.Contact
	if err := json.Unmarshal([]byte(blob), &contacts); err != nil {
		// A corrupt blob is not fatal; fall back to the seed list.
		log.Printf("sqlite store: unparseable blob, using seed list: %v", err)
		return SeedContacts(), nil
	}

	return contacts, nil
}

// Save stores the full list under the single store key.
func (s *SQLiteStore) Save(ctx context.Context, contacts []domain.Contact) error {
	if s.DB == nil {
		return errors.New("sqlite store: DB is nil")
	}

	blob, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("save contacts: marshal list: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO contact_store (key, value)
	VALUES (?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, query, StoreKey, string(blob)); err != nil {
		return fmt.Errorf("save contacts: write contact_store: %w", err)
	}

	return nil
}
