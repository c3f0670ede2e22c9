package domain

import "time"

// Role is a closed enumeration; anything outside the three values is
// rejected at the boundary.
type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

type Permission string

const (
	PermManageRooms    Permission = "manage-rooms"
	PermManageBookings Permission = "manage-bookings"
	PermManageEvents   Permission = "manage-events"
	PermViewReports    Permission = "view-reports"
	PermManageUsers    Permission = "manage-users"
)

var rolePermissions = map[Role][]Permission{
	RoleStaff: {PermManageRooms, PermManageBookings, PermManageEvents, PermViewReports},
	RoleAdmin: {PermManageRooms, PermManageBookings, PermManageEvents, PermViewReports, PermManageUsers},
}

// Can reports whether the role carries the permission. Guests hold none;
// they act only on their own resources, which handlers check by ownership.
func (r Role) Can(p Permission) bool {
	for _, perm := range rolePermissions[r] {
		if perm == p {
			return true
		}
	}
	return false
}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is an issued bearer token. Tokens are random, stored server side
// and expire; there is no claim payload to decode.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type UserRepository interface {
	Create(user *User) error
	GetByID(id int) (*User, error)
	GetByEmail(email string) (*User, error)
	UpdateRole(id int, role Role) error
	List() ([]User, error)
}

type SessionRepository interface {
	Create(session *Session) error
	GetByToken(token string) (*Session, error)
	Delete(token string) error
	DeleteExpired(asOf time.Time) (int64, error)
}
