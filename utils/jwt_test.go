package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malika-s1/restoranchec/entity"
)

const testSecret = "jwt-test-secret"

func TestTokenRoundTrip(t *testing.T) {
	user := &entity.User{ID: 7, Username: "admin", Role: "admin"}

	token, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyToken_Expired(t *testing.T) {
	user := &entity.User{ID: 1, Username: "x", Role: "manager"}
	token, err := GenerateToken(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	user := &entity.User{ID: 1, Username: "x", Role: "manager"}
	token, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(token, "other-secret")
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken("not.a.token", testSecret)
	assert.Error(t, err)
}
