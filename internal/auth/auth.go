// Package auth provides the username/password credential store.
package auth

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	apperrors "github.com/mennaheldaly/Daytrader/internal/errors"
	"github.com/mennaheldaly/Daytrader/internal/models"
)

// Manager owns the users table. It runs over a single shared connection and
// serializes through normal request handling; there is no pool and no
// retry-on-contention logic.
type Manager struct {
	db     *sql.DB
	hasher Hasher
	logger zerolog.Logger
}

// NewManager opens (or creates) the user database at dbPath.
func NewManager(dbPath string, hasher Hasher, logger zerolog.Logger) (*Manager, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open user database: %w", err)
	}
	db.SetMaxOpenConns(1)

	m := &Manager{
		db:     db,
		hasher: hasher,
		logger: logger,
	}

	if err := m.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize user schema: %w", err)
	}
	return m, nil
}

func (m *Manager) initSchema() error {
	_, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL
		)
	`)
	return err
}

// Close closes the database connection.
func (m *Manager) Close() error {
	return m.db.Close()
}

// Register creates a new user. A taken username or email declines the
// registration with a RegistrationError carrying a user-facing message; it
// is not a fatal failure.
func (m *Manager) Register(username, email, password string) (*models.User, error) {
	var taken int
	if err := m.db.QueryRow(`SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&taken); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken > 0 {
		return nil, apperrors.NewRegistrationError("username", fmt.Sprintf("username %q is already registered", username))
	}
	if err := m.db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&taken); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken > 0 {
		return nil, apperrors.NewRegistrationError("email", fmt.Sprintf("email %q is already registered", email))
	}

	digest, err := m.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	result, err := m.db.Exec(
		`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
		username, email, digest,
	)
	if err != nil {
		// UNIQUE constraint race between the checks above and the insert.
		return nil, apperrors.NewRegistrationError("user", "username or email is already registered")
	}

	id, _ := result.LastInsertId()
	m.logger.Info().Str("username", username).Msg("User registered")

	return &models.User{ID: id, Username: username, Email: email}, nil
}

// Authenticate reports whether the username/password pair matches a stored
// user. Unknown users and wrong passwords are indistinguishable.
func (m *Manager) Authenticate(username, password string) bool {
	var digest string
	err := m.db.QueryRow(`SELECT password_hash FROM users WHERE username = ?`, username).Scan(&digest)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		m.logger.Warn().Err(err).Str("username", username).Msg("Authentication query failed")
		return false
	}
	return m.hasher.Verify(digest, password)
}

// UserInfo returns the stored record for a username.
func (m *Manager) UserInfo(username string) (*models.User, bool) {
	var u models.User
	err := m.db.QueryRow(
		`SELECT id, username, email FROM users WHERE username = ?`, username,
	).Scan(&u.ID, &u.Username, &u.Email)
	if err != nil {
		return nil, false
	}
	return &u, true
}
