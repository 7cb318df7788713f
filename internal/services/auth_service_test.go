package services_test

import (
	"testing"
	"time"

	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_AndDuplicateEmail(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})

	resp, err := sc.AuthService.Register(db, &dto.RegisterRequest{
		FullName: "أحمد",
		Email:    "ahmad@test.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "user", resp.User.Role)

	_, err = sc.AuthService.Register(db, &dto.RegisterRequest{
		FullName: "أحمد آخر",
		Email:    "ahmad@test.com",
		Password: "password456",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})

	_, err := sc.AuthService.Register(db, &dto.RegisterRequest{
		FullName: "سارة",
		Email:    "sara@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = sc.AuthService.Login(db, &dto.LoginRequest{
		Email:    "sara@test.com",
		Password: "wrong-password",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	// Unknown emails get the same error, not a not-found
	_, err = sc.AuthService.Login(db, &dto.LoginRequest{
		Email:    "nobody@test.com",
		Password: "whatever1",
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	mailer := &fakeMailer{}
	sc := newTestContainer(t, mailer)

	_, err := sc.AuthService.Register(db, &dto.RegisterRequest{
		FullName: "نور",
		Email:    "noor@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// Unknown email succeeds silently
	require.NoError(t, sc.AuthService.ForgotPassword(db, &dto.ForgotPasswordRequest{Email: "ghost@test.com"}))
	assert.Empty(t, mailer.sent)

	require.NoError(t, sc.AuthService.ForgotPassword(db, &dto.ForgotPasswordRequest{Email: "noor@test.com"}))
	require.Len(t, mailer.sent, 1)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "noor@test.com").Error)
	require.NotEmpty(t, user.ResetToken)
	assert.Contains(t, mailer.sent[0].Body, user.ResetToken)

	require.NoError(t, sc.AuthService.ResetPassword(db, &dto.ResetPasswordRequest{
		Token:       user.ResetToken,
		NewPassword: "new-password-1",
	}))

	// The token is single use
	_, err = sc.AuthService.Login(db, &dto.LoginRequest{Email: "noor@test.com", Password: "new-password-1"})
	require.NoError(t, err)

	err = sc.AuthService.ResetPassword(db, &dto.ResetPasswordRequest{
		Token:       user.ResetToken,
		NewPassword: "another-pass-1",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})

	expired := time.Now().Add(-time.Minute)
	user := &models.User{
		FullName:      "قديم",
		Email:         "old@test.com",
		PasswordHash:  "x",
		Role:          models.UserRoleUser,
		ResetToken:    "stale-token",
		ResetTokenExp: &expired,
	}
	require.NoError(t, db.Create(user).Error)

	err := sc.AuthService.ResetPassword(db, &dto.ResetPasswordRequest{
		Token:       "stale-token",
		NewPassword: "fresh-password",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
}
