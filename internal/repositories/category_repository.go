package repositories

import (
	"errors"

	"flohmarkt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	Create(db *gorm.DB, category *models.Category) error
	FindByID(db *gorm.DB, id string) (*models.Category, error)
	FindByName(db *gorm.DB, name string) (*models.Category, error)
	FindAll(db *gorm.DB) ([]models.Category, error)
	Delete(db *gorm.DB, id string) error
	CountProducts(db *gorm.DB, categoryID string) (int64, error)
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Category{}, "id = ?", id).Error
}

// CountProducts returns how many products still reference the category;
// deletion is blocked while the count is non-zero.
func (r *CategoryRepositoryImpl) CountProducts(db *gorm.DB, categoryID string) (int64, error) {
	var count int64
	err := db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
