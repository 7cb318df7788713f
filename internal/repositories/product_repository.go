package repositories

import (
	"errors"

	"flohmarkt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows admin product listings.
type ProductFilter struct {
	Status     models.ProductStatus
	CategoryID string
	Limit      int
	Offset     int
}

type ProductRepository interface {
	Create(db *gorm.DB, product *models.Product) error
	FindByID(db *gorm.DB, id string) (*models.Product, error)
	Update(db *gorm.DB, product *models.Product) error
	Delete(db *gorm.DB, id string) error

	// Public listings: approved only, newest first.
	FindApproved(db *gorm.DB, categoryID string, limit, offset int) ([]models.Product, error)
	CountApproved(db *gorm.DB, categoryID string) (int64, error)
	FindApprovedByID(db *gorm.DB, id string) (*models.Product, error)

	FindByOwner(db *gorm.DB, userID string) ([]models.Product, error)

	// Admin operations
	FindWithFilter(db *gorm.DB, filter ProductFilter) ([]models.Product, int64, error)
	CountByStatus(db *gorm.DB, status models.ProductStatus) (int64, error)
}

type ProductRepositoryImpl struct{}

func NewProductRepository() ProductRepository {
	return &ProductRepositoryImpl{}
}

func (r *ProductRepositoryImpl) Create(db *gorm.DB, product *models.Product) error {
	return db.Create(product).Error
}

func (r *ProductRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.Preload("Category").Preload("User").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) Update(db *gorm.DB, product *models.Product) error {
	return db.Save(product).Error
}

// Delete removes the product together with its negotiations and messages.
// The FKs cascade too, but the explicit deletes keep the behavior identical
// on engines that do not enforce the constraint.
func (r *ProductRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PriceNegotiation{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Message{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}

func (r *ProductRepositoryImpl) FindApproved(db *gorm.DB, categoryID string, limit, offset int) ([]models.Product, error) {
	var products []models.Product
	query := db.Preload("Category").
		Where("status = ?", models.ProductStatusApproved).
		Order("created_at DESC")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) CountApproved(db *gorm.DB, categoryID string) (int64, error) {
	var count int64
	query := db.Model(&models.Product{}).Where("status = ?", models.ProductStatusApproved)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *ProductRepositoryImpl) FindApprovedByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.Preload("Category").Preload("User").
		First(&product, "id = ? AND status = ?", id, models.ProductStatusApproved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) FindByOwner(db *gorm.DB, userID string) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) FindWithFilter(db *gorm.DB, filter ProductFilter) ([]models.Product, int64, error) {
	query := db.Model(&models.Product{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	query = query.Preload("Category").Preload("User").Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepositoryImpl) CountByStatus(db *gorm.DB, status models.ProductStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Product{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
