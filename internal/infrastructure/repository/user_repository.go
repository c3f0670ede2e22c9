package repository

import (
	"database/sql"
	"fmt"

	"github.com/raushan1895/resort360/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of userRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{db: db}
}

const userSelect = `
	SELECT user_id, name, email, phone, password_hash, role, created_at
	FROM app_user
`

func scanUser(s interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	err := s.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

func (r *userRepository) Create(user *domain.User) error {
	query := `
		INSERT INTO app_user (name, email, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at
	`
	err := r.db.QueryRow(query, user.Name, user.Email, user.Phone, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id int) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(userSelect+" WHERE user_id = $1", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("error querying user %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(userSelect+" WHERE email = $1", email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError("user", email)
		}
		return nil, fmt.Errorf("error querying user %s: %w", email, err)
	}
	return &user, nil
}

func (r *userRepository) UpdateRole(id int, role domain.Role) error {
	result, err := r.db.Exec(`UPDATE app_user SET role = $1 WHERE user_id = $2`, role, id)
	if err != nil {
		return fmt.Errorf("error updating user %d role: %w", id, err)
	}
	return requireRow(result, "user", id)
}

func (r *userRepository) List() ([]domain.User, error) {
	rows, err := r.db.Query(userSelect + " ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
