package jwt

import (
	"testing"
	"time"

	"ecotrack/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("top-secret")

	token, err := service.GenerateToken("kitchen-tablet", time.Hour)
	require.NoError(t, err)

	subject, err := service.GetSubjectByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kitchen-tablet", subject)
}

func TestJWTService_RejectsOtherSecret(t *testing.T) {
	token, err := NewJWTService("one").GenerateToken("phone", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTService("two").GetSubjectByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = NewJWTService("one").GetSubjectByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_Expired(t *testing.T) {
	service := &jwtService{
		secretKey: "top-secret",
		issuer:    "ECOTRACK",
		now:       func() time.Time { return time.Now().Add(-2 * time.Hour) },
	}

	token, err := service.GenerateToken("phone", time.Hour)
	require.NoError(t, err)

	_, err = service.GetSubjectByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("").GenerateToken("phone", time.Hour)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
