package repositories

import (
	"errors"

	"flohmarkt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNegotiationNotFound = errors.New("negotiation not found")

type NegotiationRepository interface {
	Create(db *gorm.DB, negotiation *models.PriceNegotiation) error
	FindByID(db *gorm.DB, id string) (*models.PriceNegotiation, error)
	Update(db *gorm.DB, negotiation *models.PriceNegotiation) error

	// FindPendingByProductAndBuyer returns the single pending offer a buyer
	// has on a product, if any. The partial unique index guarantees there is
	// at most one.
	FindPendingByProductAndBuyer(db *gorm.DB, productID, buyerID string) (*models.PriceNegotiation, error)

	FindByProduct(db *gorm.DB, productID string) ([]models.PriceNegotiation, error)
	CountPendingByProduct(db *gorm.DB, productID string) (int64, error)
}

type NegotiationRepositoryImpl struct{}

func NewNegotiationRepository() NegotiationRepository {
	return &NegotiationRepositoryImpl{}
}

func (r *NegotiationRepositoryImpl) Create(db *gorm.DB, negotiation *models.PriceNegotiation) error {
	return db.Create(negotiation).Error
}

func (r *NegotiationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.PriceNegotiation, error) {
	var negotiation models.PriceNegotiation
	err := db.Preload("Product").Preload("Buyer").First(&negotiation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNegotiationNotFound
		}
		return nil, err
	}
	return &negotiation, nil
}

func (r *NegotiationRepositoryImpl) Update(db *gorm.DB, negotiation *models.PriceNegotiation) error {
	return db.Save(negotiation).Error
}

func (r *NegotiationRepositoryImpl) FindPendingByProductAndBuyer(db *gorm.DB, productID, buyerID string) (*models.PriceNegotiation, error) {
	var negotiation models.PriceNegotiation
	err := db.First(&negotiation,
		"product_id = ? AND buyer_id = ? AND status = ?",
		productID, buyerID, models.NegotiationStatusPending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNegotiationNotFound
		}
		return nil, err
	}
	return &negotiation, nil
}

func (r *NegotiationRepositoryImpl) FindByProduct(db *gorm.DB, productID string) ([]models.PriceNegotiation, error) {
	var negotiations []models.PriceNegotiation
	err := db.Preload("Buyer").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&negotiations).Error
	return negotiations, err
}

func (r *NegotiationRepositoryImpl) CountPendingByProduct(db *gorm.DB, productID string) (int64, error) {
	var count int64
	err := db.Model(&models.PriceNegotiation{}).
		Where("product_id = ? AND status = ?", productID, models.NegotiationStatusPending).
		Count(&count).Error
	return count, err
}
