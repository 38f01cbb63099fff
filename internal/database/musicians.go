package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrUsernameTaken signals a signup attempt with an already-registered username.
var ErrUsernameTaken = errors.New("database: username already in use")

// Musician is a registered user of the rehearsal system.
type Musician struct {
	ID           string
	Username     string
	PasswordHash string
	Instrument   string
	Role         string
	CreatedAt    time.Time
}

// MusicianStore provides access to the musicians table.
type MusicianStore struct {
	db *sql.DB
}

// NewMusicianStore creates a MusicianStore on the given database.
func NewMusicianStore(db *sql.DB) *MusicianStore {
	return &MusicianStore{db: db}
}

// Create inserts a new musician. Returns ErrUsernameTaken when the username
// is already registered.
func (s *MusicianStore) Create(ctx context.Context, m Musician) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO musicians (id, username, password_hash, instrument, role)
		 VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Username, m.PasswordHash, m.Instrument, m.Role,
	)
	if err != nil {
		if existing, lookupErr := s.GetByUsername(ctx, m.Username); lookupErr == nil && existing != nil {
			return ErrUsernameTaken
		}
		return fmt.Errorf("database: insert musician: %w", err)
	}
	return nil
}

// GetByUsername fetches a musician by username. Returns (nil, nil) when no
// such musician exists.
func (s *MusicianStore) GetByUsername(ctx context.Context, username string) (*Musician, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, instrument, role, created_at
		 FROM musicians WHERE username = ?`,
		username,
	)
	var m Musician
	err := row.Scan(&m.ID, &m.Username, &m.PasswordHash, &m.Instrument, &m.Role, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("database: find musician: %w", err)
	}
	return &m, nil
}
