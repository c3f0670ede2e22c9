package repository

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new instance of sessionRepository.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{db: db}
}

// generateToken returns 32 random bytes hex encoded.
func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Create fills in the session token before persisting it.
func (r *sessionRepository) Create(session *domain.Session) error {
	token, err := generateToken()
	if err != nil {
		return err
	}
	session.Token = token

	query := `
		INSERT INTO session (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err = r.db.QueryRow(query, session.Token, session.UserID, session.ExpiresAt).Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}
	return nil
}

func (r *sessionRepository) GetByToken(token string) (*domain.Session, error) {
	query := `
		SELECT token, user_id, expires_at, created_at
		FROM session
		WHERE token = $1
	`
	var session domain.Session
	err := r.db.QueryRow(query, token).Scan(&session.Token, &session.UserID, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("session", token)
		}
		return nil, fmt.Errorf("error querying session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Delete(token string) error {
	if _, err := r.db.Exec(`DELETE FROM session WHERE token = $1`, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (r *sessionRepository) DeleteExpired(asOf time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM session WHERE expires_at < $1`, asOf)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	return result.RowsAffected()
}
