package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
)

func validUserParams() UserParams {
	return UserParams{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "password123",
	}
}

func TestNewUser_Success(t *testing.T) {
	before := time.Now().UTC()

	u, err := NewUser(validUserParams())
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "John", u.FirstName)
	assert.Equal(t, "Doe", u.LastName)
	assert.Equal(t, "john@example.com", u.Email)
	assert.Equal(t, "password123", u.Password)
	assert.False(t, u.CreatedAt.Before(before))
	assert.False(t, u.CreatedAt.After(time.Now().UTC()))
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestNewUser_UniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		u, err := NewUser(validUserParams())
		require.NoError(t, err)
		_, dup := seen[u.ID]
		require.False(t, dup, "duplicate id %s", u.ID)
		seen[u.ID] = struct{}{}
	}
}

func TestNewUser_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *UserParams)
		wantMsg string
	}{
		{
			name:    "everything missing reports first name",
			mutate:  func(p *UserParams) { *p = UserParams{} },
			wantMsg: "First name is required",
		},
		{
			name:    "last name",
			mutate:  func(p *UserParams) { p.LastName = ""; p.Email = "" },
			wantMsg: "Last name is required",
		},
		{
			name:    "email presence",
			mutate:  func(p *UserParams) { p.Email = "  "; p.Password = "" },
			wantMsg: "Email is required",
		},
		{
			name:    "email format",
			mutate:  func(p *UserParams) { p.Email = "john.example.com"; p.Password = "" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "password presence",
			mutate:  func(p *UserParams) { p.Password = "" },
			wantMsg: "Password is required",
		},
		{
			name:    "password length",
			mutate:  func(p *UserParams) { p.Password = "12345" },
			wantMsg: "Password must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validUserParams()
			tt.mutate(&p)

			u, err := NewUser(p)
			require.Error(t, err)
			assert.Nil(t, u)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestNewUser_RejectsPresetIdentity(t *testing.T) {
	p := validUserParams()
	p.ID = "abc"

	_, err := NewUser(p)
	require.Error(t, err)

	p = validUserParams()
	p.CreatedAt = time.Now()
	_, err = NewUser(p)
	require.Error(t, err)
}

func TestRestoreUser(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("success keeps supplied values", func(t *testing.T) {
		p := validUserParams()
		p.ID = "user-1"
		p.CreatedAt = created

		u, err := RestoreUser(p)
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
		assert.Equal(t, created, u.CreatedAt)
		assert.Equal(t, created, u.UpdatedAt)
	})

	t.Run("missing id or createdAt", func(t *testing.T) {
		noID := validUserParams()
		noID.CreatedAt = created
		noCreated := validUserParams()
		noCreated.ID = "user-1"

		for _, p := range []UserParams{noID, noCreated} {
			_, err := RestoreUser(p)
			require.Error(t, err)
			assert.Equal(t, "ID and createdAt are required for restoring a user", err.Error())
		}
	})

	t.Run("still validates fields", func(t *testing.T) {
		p := validUserParams()
		p.ID = "user-1"
		p.CreatedAt = created
		p.Email = "broken"

		_, err := RestoreUser(p)
		require.Error(t, err)
		assert.Equal(t, "Invalid email format", err.Error())
	})
}

func TestUser_UpdatePassword(t *testing.T) {
	u, err := NewUser(validUserParams())
	require.NoError(t, err)
	prev := u.UpdatedAt

	err = u.UpdatePassword("short")
	require.Error(t, err)
	assert.Equal(t, "password123", u.Password)
	assert.Equal(t, prev, u.UpdatedAt)

	time.Sleep(time.Millisecond)
	require.NoError(t, u.UpdatePassword("new-secret"))
	assert.Equal(t, "new-secret", u.Password)
	assert.True(t, u.UpdatedAt.After(prev))
}

func TestUser_FullName(t *testing.T) {
	u := &User{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", u.FullName())
}
