package utils

import (
	"testing"
	"time"

	"github.com/SscSPs/entry_workbench/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	actor := domain.Actor{UserID: "user-1", Role: domain.RoleApprover}

	token, err := GenerateJWT(actor, "secret", time.Hour, "entry-workbench")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "entry-workbench", claims.Issuer)

	got, err := claims.Actor()
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestParseAndValidateJWT_Failures(t *testing.T) {
	actor := domain.Actor{UserID: "user-1", Role: domain.RolePreparer}

	token, err := GenerateJWT(actor, "secret", time.Hour, "")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err, "wrong secret must fail")

	expired, err := GenerateJWT(actor, "secret", -time.Minute, "")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestActorClaims_RejectsUnknownRole(t *testing.T) {
	claims := &ActorClaims{Role: "AUDITOR", RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}
	_, err := claims.Actor()
	assert.Error(t, err)

	claims = &ActorClaims{Role: string(domain.RolePreparer)}
	_, err = claims.Actor()
	assert.Error(t, err, "missing subject")
}
