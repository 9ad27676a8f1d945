package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/pkg/config"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
)

func authConfig() config.AuthConfig {
	return config.AuthConfig{
		Passphrase:  "maktab-2024",
		JWTSecret:   "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "jadval-api",
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc := NewAuthService(authConfig(), nil, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Passphrase: "maktab-2024"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "staff", claims.Subject)
	assert.Equal(t, "jadval-api", claims.Issuer)
}

func TestLoginRejectsWrongPassphrase(t *testing.T) {
	svc := NewAuthService(authConfig(), nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Passphrase: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidPassphrase.Code, appErrors.FromError(err).Code)
}

func TestLoginRejectsEmptyPassphrase(t *testing.T) {
	svc := NewAuthService(authConfig(), nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLoginPrefersBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := authConfig()
	cfg.PassphraseHash = string(hash)
	svc := NewAuthService(cfg, nil, nil)

	_, err = svc.Login(context.Background(), models.LoginRequest{Passphrase: "maktab-2024"})
	require.Error(t, err)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Passphrase: "hashed-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	svc := NewAuthService(authConfig(), nil, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Passphrase: "maktab-2024"})
	require.NoError(t, err)

	other := authConfig()
	other.JWTSecret = "different-secret"
	otherSvc := NewAuthService(other, nil, nil)

	_, err = otherSvc.ValidateToken(resp.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestLoginWithNoConfiguredPassphrase(t *testing.T) {
	cfg := authConfig()
	cfg.Passphrase = ""
	svc := NewAuthService(cfg, nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Passphrase: "anything"})
	require.Error(t, err)
}
