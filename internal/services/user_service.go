package services

import (
	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/repositories"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)

	// Admin view
	ListAll(db *gorm.DB, role models.UserRole, page, pageSize int) (*dto.UserListResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}
	return buildUserResponse(user), nil
}

func (s *userService) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.findUser(db, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Update(tx, user)
	}); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	return buildUserResponse(user), nil
}

func (s *userService) ListAll(db *gorm.DB, role models.UserRole, page, pageSize int) (*dto.UserListResponse, error) {
	if role != models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("admin access required")
	}

	users, err := s.userRepo.FindAll(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	total, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	resp := &dto.UserListResponse{
		Users:    make([]dto.UserResponse, 0, len(users)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range users {
		resp.Users = append(resp.Users, *buildUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *userService) findUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewUserNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}
	return user, nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
