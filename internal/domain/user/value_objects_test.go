//go:build unit

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "guest@example.com", want: "guest@example.com"},
		{name: "normalizes case and whitespace", input: "  Guest@Example.COM ", want: "guest@example.com"},
		{name: "empty", input: "", wantErr: true},
		{name: "missing domain", input: "guest@", wantErr: true},
		{name: "not an address", input: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestValidateNewPassword(t *testing.T) {
	assert.NoError(t, ValidateNewPassword("longenough"))
	assert.ErrorIs(t, ValidateNewPassword(""), ErrEmptyPassword)
	assert.ErrorIs(t, ValidateNewPassword("short"), ErrPasswordTooWeak)
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"guest", "manager", "admin"} {
		role, err := NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := NewRole("superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCanManageReservations(t *testing.T) {
	assert.False(t, RoleGuest.CanManageReservations())
	assert.True(t, RoleManager.CanManageReservations())
	assert.True(t, RoleAdmin.CanManageReservations())
}

func TestNewUserDefaults(t *testing.T) {
	email, err := NewEmail("guest@example.com")
	require.NoError(t, err)

	u := NewUser(email, "hashed", RoleGuest)
	assert.True(t, u.IsActive())
	assert.False(t, u.EmailVerified())
	assert.Equal(t, RoleGuest, u.Role())
	assert.NotEqual(t, u.ID().String(), "00000000-0000-0000-0000-000000000000")
}
