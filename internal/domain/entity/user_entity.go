package entity

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
)

// MinPasswordLength applies to the plaintext password.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is the aggregate root for the user domain.
// Password holds plaintext right after NewUser and a bcrypt hash once the
// create use-case has replaced it; restored users always carry the hash.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserParams is the input for NewUser and RestoreUser.
type UserParams struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser validates p and builds a fresh user with a generated id and timestamps.
// Supplying ID or CreatedAt is an error; use RestoreUser for stored rows.
func NewUser(p UserParams) (*User, error) {
	if p.ID != "" || !p.CreatedAt.IsZero() {
		return nil, apperror.Validation("ID and createdAt cannot be provided when creating a user")
	}
	if err := validateUser(p); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Password:  p.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rehydrates a user read back from storage.
func RestoreUser(p UserParams) (*User, error) {
	if p.ID == "" || p.CreatedAt.IsZero() {
		return nil, apperror.Validation("ID and createdAt are required for restoring a user")
	}
	if err := validateUser(p); err != nil {
		return nil, err
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = p.CreatedAt
	}
	return &User{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Password:  p.Password,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}, nil
}

// UpdatePassword replaces the password after checking its length and bumps UpdatedAt.
func (u *User) UpdatePassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	u.Password = newPassword
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// validateUser checks fields in a fixed order and reports the first failure.
func validateUser(p UserParams) error {
	switch {
	case strings.TrimSpace(p.FirstName) == "":
		return apperror.Validation("First name is required")
	case strings.TrimSpace(p.LastName) == "":
		return apperror.Validation("Last name is required")
	case strings.TrimSpace(p.Email) == "":
		return apperror.Validation("Email is required")
	case !IsValidEmail(p.Email):
		return apperror.Validation("Invalid email format")
	}
	return validatePassword(p.Password)
}

func validatePassword(password string) error {
	if password == "" {
		return apperror.Validation("Password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperror.Validation("Password must be at least 6 characters long")
	}
	return nil
}

// IsValidEmail reports whether s has a basic local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
