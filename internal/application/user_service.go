package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 30 * 24 * time.Hour

// UserService handles accounts, login and session tokens.
type UserService struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	limiter     *RateLimiter
	validator   Validator
}

func NewUserService(userRepo domain.UserRepository, sessionRepo domain.SessionRepository, limiter *RateLimiter) *UserService {
	return &UserService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		limiter:     limiter,
	}
}

// Register creates a guest account. Duplicate emails conflict.
func (s *UserService) Register(name, emailAddr, phone, password string) (*domain.User, error) {
	if err := s.validator.ValidateName(name, "name"); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateEmail(emailAddr); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := s.validator.ValidatePhone(phone); err != nil {
			return nil, err
		}
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("password", "must have at least 8 characters")
	}

	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	existing, err := s.userRepo.GetByEmail(emailAddr)
	if err != nil && !domain.IsNotFoundError(err) {
		return nil, fmt.Errorf("look up email: %w", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("email %s is already registered", emailAddr)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        emailAddr,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         domain.RoleGuest,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a session token. Attempts are rate
// limited per email.
func (s *UserService) Login(emailAddr, password string) (*domain.Session, *domain.User, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	if s.limiter != nil {
		if ok, err := s.limiter.Allow(emailAddr); !ok {
			return nil, nil, domain.NewValidationError("login", err.Error())
		}
	}

	user, err := s.userRepo.GetByEmail(emailAddr)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return nil, nil, domain.NewValidationError("login", "invalid email or password")
		}
		return nil, nil, fmt.Errorf("look up email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.NewValidationError("login", "invalid email or password")
	}

	session := &domain.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	if s.limiter != nil {
		s.limiter.Reset(emailAddr)
	}

	return session, user, nil
}

// Authenticate resolves a bearer token to its user.
func (s *UserService) Authenticate(token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.NewValidationError("token", "token is required")
	}

	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, domain.NewNotFoundError("session", token)
	}

	return s.userRepo.GetByID(session.UserID)
}

// Logout revokes a session token.
func (s *UserService) Logout(token string) error {
	return s.sessionRepo.Delete(token)
}

// UpdateRole changes a user's role; the role set is closed.
func (s *UserService) UpdateRole(userID int, role domain.Role) error {
	if !role.Valid() {
		return domain.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return err
	}
	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		return fmt.Errorf("update role for user %d: %w", userID, err)
	}
	return nil
}

func (s *UserService) ListUsers() ([]domain.User, error) {
	return s.userRepo.List()
}
