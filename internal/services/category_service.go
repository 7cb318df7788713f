package services

import (
	"net/http"

	"flohmarkt_backend/internal/logger"
	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/repositories"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	List(db *gorm.DB) ([]dto.CategoryResponse, error)

	// Admin operations
	Create(db *gorm.DB, role models.UserRole, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(db *gorm.DB, role models.UserRole, categoryID string) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(db *gorm.DB) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, dto.CategoryResponse{
			ID:   categories[i].ID,
			Name: categories[i].Name,
		})
	}
	return responses, nil
}

func (s *categoryService) Create(db *gorm.DB, role models.UserRole, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if role != models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("admin access required")
	}

	if _, err := s.categoryRepo.FindByName(db, req.Name); err == nil {
		return nil, apperrors.New(apperrors.CodeAlreadyExists, "category",
			"Category already exists", http.StatusConflict)
	} else if err != repositories.ErrCategoryNotFound {
		return nil, apperrors.PersistenceError(err)
	}

	category := &models.Category{Name: req.Name}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.categoryRepo.Create(tx, category)
	}); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	logger.Info("category created", "category_id", category.ID, "name", category.Name)
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// Delete refuses while any product still references the category.
func (s *categoryService) Delete(db *gorm.DB, role models.UserRole, categoryID string) error {
	if role != models.UserRoleAdmin {
		return apperrors.NewForbiddenError("admin access required")
	}

	if _, err := s.categoryRepo.FindByID(db, categoryID); err != nil {
		if err == repositories.ErrCategoryNotFound {
			return apperrors.NewCategoryNotFoundError()
		}
		return apperrors.PersistenceError(err)
	}

	count, err := s.categoryRepo.CountProducts(db, categoryID)
	if err != nil {
		return apperrors.PersistenceError(err)
	}
	if count > 0 {
		return apperrors.NewCategoryInUseError()
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.categoryRepo.Delete(tx, categoryID)
	}); err != nil {
		return apperrors.PersistenceError(err)
	}

	logger.Info("category deleted", "category_id", categoryID)
	return nil
}
