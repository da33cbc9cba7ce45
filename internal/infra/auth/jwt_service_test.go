package auth

import (
	"testing"
	"time"

	"clinic/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: time.Hour}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long"))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.SessionTTL())

	userID, sessionID := uuid.New(), uuid.New()
	token, err := svc.Issue(userID, sessionID, time.Now().Add(svc.SessionTTL()))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), uuid.New(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuerSvc, err := NewJWTService(newTestConfig("one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("two"))
	require.NoError(t, err)

	token, err := issuerSvc.Issue(uuid.New(), uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)

	_, err = verifier.Validate("garbage")
	assert.Error(t, err)
}

func TestJWTService_Hash(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	assert.Equal(t, svc.Hash("abc"), svc.Hash("abc"))
	assert.NotEqual(t, svc.Hash("abc"), svc.Hash("abd"))
	assert.Len(t, svc.Hash("abc"), 64)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}
