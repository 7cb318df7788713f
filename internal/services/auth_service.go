package services

import (
	"fmt"
	"time"

	"flohmarkt_backend/internal/auth"
	"flohmarkt_backend/internal/email"
	"flohmarkt_backend/internal/logger"
	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/repositories"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// AuthService covers registration, login and the password-reset flow.
type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ForgotPassword(db *gorm.DB, req *dto.ForgotPasswordRequest) error
	ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) error
}

type authService struct {
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, mailer email.Provider) AuthService {
	return &authService{userRepo: userRepo, mailer: mailer}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.NewEmailTakenError()
	} else if err != repositories.ErrUserNotFound {
		return nil, apperrors.PersistenceError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Create(tx, user)
	}); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	logger.Info("user registered", "user_id", user.ID)
	return s.buildAuthResponse(user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewInvalidCredentialsError()
		}
		return nil, apperrors.PersistenceError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	logger.Info("user logged in", "user_id", user.ID)
	return s.buildAuthResponse(user)
}

// ForgotPassword issues a reset token and emails it. An unknown email returns
// success anyway so the endpoint cannot be used to probe for accounts.
func (s *authService) ForgotPassword(db *gorm.DB, req *dto.ForgotPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil
		}
		return apperrors.PersistenceError(err)
	}

	exp := time.Now().Add(resetTokenTTL)
	user.ResetToken = uuid.NewString()
	user.ResetTokenExp = &exp
	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Update(tx, user)
	}); err != nil {
		return apperrors.PersistenceError(err)
	}

	subject := "إعادة تعيين كلمة المرور"
	body := fmt.Sprintf("رمز إعادة التعيين الخاص بك: %s\nصالح لمدة ساعة واحدة.", user.ResetToken)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		logger.Warn("reset email delivery failed", "user_id", user.ID, "error", err)
	}

	logger.Info("password reset requested", "user_id", user.ID)
	return nil
}

func (s *authService) ResetPassword(db *gorm.DB, req *dto.ResetPasswordRequest) error {
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ValidationError(map[string]string{"new_password": err.Error()})
	}

	user, err := s.userRepo.FindByResetToken(db, req.Token)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.NewResetTokenError()
		}
		return apperrors.PersistenceError(err)
	}
	if user.ResetTokenExp == nil || user.ResetTokenExp.Before(time.Now()) {
		return apperrors.NewResetTokenError()
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Update(tx, user)
	}); err != nil {
		return apperrors.PersistenceError(err)
	}

	logger.Info("password reset completed", "user_id", user.ID)
	return nil
}

func (s *authService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		User:        *buildUserResponse(user),
	}, nil
}
