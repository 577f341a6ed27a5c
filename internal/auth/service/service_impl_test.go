package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rpsgarage/servicecenter/internal/auth/domain"
	"github.com/rpsgarage/servicecenter/internal/auth/repository"
	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/internal/config"
)

func newAuthService(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Session{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	repo, sessionRepo := repository.New(db)
	svc := New(Params{
		Cfg:         config.Config{SessionTTL: 24 * time.Hour},
		Log:         zap.NewNop(),
		GenID:       node,
		Clock:       clk,
		Repo:        repo,
		SessionRepo: sessionRepo,
	})
	return svc, clk
}

func register(t *testing.T, svc domain.Service, username string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test User",
		Password: "strong-password",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "  Alice ",
		Email:    " Alice@Example.com ",
		Password: "strong-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.Enabled)
	assert.NotEqual(t, "strong-password", user.PasswordHash)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice")

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "ALICE",
		Email:    "other@example.com",
		Password: "strong-password",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, _ := newAuthService(t)
	user := register(t, svc, "alice")

	result, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "strong-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.RawToken)
	assert.Equal(t, user.ID, result.User.ID)

	principal, err := svc.Authenticate(context.Background(), result.RawToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.User.ID)
	assert.Equal(t, result.SessionID, principal.Session.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice")

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "ghost",
		Password: "strong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, clk := newAuthService(t)
	register(t, svc, "alice")

	result, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "strong-password",
	})
	require.NoError(t, err)

	clk.Advance(25 * time.Hour)

	_, err = svc.Authenticate(context.Background(), result.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice")

	result, err := svc.Login(context.Background(), domain.LoginRequest{
		Username: "alice",
		Password: "strong-password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.RawToken))

	_, err = svc.Authenticate(context.Background(), result.RawToken)
	assert.ErrorIs(t, err, domain.ErrSessionRevoked)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)
	user := register(t, svc, "alice")
	ctx := context.Background()

	err := svc.ChangePassword(ctx, user.ID, "wrong-current", "another-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, user.ID, "strong-password", "short")
	assert.ErrorIs(t, err, domain.ErrWeakPassword)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "strong-password", "another-password"))

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "strong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "another-password"})
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newAuthService(t)
	user := register(t, svc, "alice")
	register(t, svc, "bob")

	updated, err := svc.UpdateProfile(context.Background(), user.ID, domain.UpdateProfileRequest{
		Email:    "new@example.com",
		FullName: "Alice Cooper",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "Alice Cooper", updated.FullName)

	_, err = svc.UpdateProfile(context.Background(), user.ID, domain.UpdateProfileRequest{
		Email: "bob@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}
