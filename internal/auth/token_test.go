package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/repairshop-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	staff := &domain.StaffMember{ID: 7, Email: "boss@example.com", Role: domain.StaffRoleManager}

	token, exp, err := tm.GenerateToken(staff)
	require.NoError(t, err)
	assert.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.StaffRoleManager, claims.Role)
	assert.Equal(t, "boss@example.com", claims.Email)

	id, err := claims.StaffID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 60)
	other := NewTokenManager("secret-b", 60)
	staff := &domain.StaffMember{ID: 1, Email: "tech@example.com", Role: domain.StaffRoleTech}

	token, _, err := tm.GenerateToken(staff)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2", 4)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "hunter2hunter2"))
	assert.Error(t, ComparePassword(hash, "wrong-password"))
}
