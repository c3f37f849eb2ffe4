package userapp

import (
	"context"
	"testing"
	"time"

	"yatube/internal/adapters/database"
	"yatube/internal/core/apperr"
	userPort "yatube/internal/ports/user"
	"yatube/internal/testutil"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *UserService {
	db := testutil.OpenDB(t)
	return NewUserService(database.NewUserRepositoryDatabase(db), []byte("test-secret"))
}

func TestRegisterAndLogin(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	dto, err := s.RegisterUser(ctx, userPort.RegisterInput{Username: "leo", Email: "leo@example.com", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, "leo", dto.Username)
	assert.NotEmpty(t, dto.ID)

	resp, err := s.LoginUser(ctx, "leo", "s3cret!")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())

	actor, err := s.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, actor.ID.String())
	assert.Equal(t, "leo", actor.Username)
	assert.True(t, actor.Authenticated())
}

func TestRegisterUser_Validation(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.RegisterUser(ctx, userPort.RegisterInput{Email: "a@example.com", Password: "pw"})
	require.True(t, apperr.IsValidation(err))
	appErr, _ := apperr.As(err)
	assert.Contains(t, appErr.Fields, "username")

	_, err = s.RegisterUser(ctx, userPort.RegisterInput{Username: "leo", Email: "leo@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = s.RegisterUser(ctx, userPort.RegisterInput{Username: "leo", Email: "other@example.com", Password: "pw"})
	assert.True(t, apperr.IsValidation(err))
	_, err = s.RegisterUser(ctx, userPort.RegisterInput{Username: "other", Email: "leo@example.com", Password: "pw"})
	assert.True(t, apperr.IsValidation(err))
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	_, err := s.RegisterUser(ctx, userPort.RegisterInput{Username: "leo", Email: "leo@example.com", Password: "right"})
	require.NoError(t, err)

	_, err = s.LoginUser(ctx, "leo", "wrong")
	assert.True(t, apperr.IsValidation(err))

	_, err = s.LoginUser(ctx, "nobody", "right")
	assert.True(t, apperr.IsValidation(err))
}

func TestParseToken_Rejects(t *testing.T) {
	s := newService(t)

	_, err := s.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewUserService(nil, []byte("another-secret"))
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "leo",
		StandardClaims: jwt.StandardClaims{
			Subject:   "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}).SignedString(other.jwtKey)
	require.NoError(t, err)
	_, err = s.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "leo",
		StandardClaims: jwt.StandardClaims{
			Subject:   "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}).SignedString(s.jwtKey)
	require.NoError(t, err)
	_, err = s.ParseToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetByUsername(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	_, err := s.RegisterUser(ctx, userPort.RegisterInput{Username: "leo", Email: "leo@example.com", Password: "pw"})
	require.NoError(t, err)

	dto, err := s.GetByUsername(ctx, "leo")
	require.NoError(t, err)
	assert.Equal(t, "leo", dto.Username)

	_, err = s.GetByUsername(ctx, "ghost")
	assert.True(t, apperr.IsNotFound(err))
}
