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

// NegotiationService mediates the single-round offer/counter-offer exchange
// between one buyer and the product owner.
//
// State machine: pending -> accepted | rejected (terminal for the round),
// pending -> countered (the buyer may then submit a fresh offer, which
// starts a new pending cycle; a countered row is never overwritten by
// SubmitOffer's pending lookup).
type NegotiationService interface {
	SubmitOffer(db *gorm.DB, buyerID string, req *dto.SubmitOfferRequest) (*dto.NegotiationResponse, error)
	Respond(db *gorm.DB, ownerID string, req *dto.RespondRequest) (*dto.NegotiationResponse, error)
	ListForProduct(db *gorm.DB, ownerID string, productID string) (*dto.NegotiationListResponse, error)
}

type negotiationService struct {
	negotiationRepo repositories.NegotiationRepository
	productRepo     repositories.ProductRepository
	userRepo        repositories.UserRepository
}

func NewNegotiationService(
	negotiationRepo repositories.NegotiationRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
) NegotiationService {
	return &negotiationService{
		negotiationRepo: negotiationRepo,
		productRepo:     productRepo,
		userRepo:        userRepo,
	}
}

// SubmitOffer records a buyer's offer. While the buyer already has a pending
// offer on the product, the new submission overwrites it in place instead of
// creating a second row, so one buyer cannot pile up offers.
func (s *negotiationService) SubmitOffer(db *gorm.DB, buyerID string, req *dto.SubmitOfferRequest) (*dto.NegotiationResponse, error) {
	if req.OfferedPrice <= 0 {
		return nil, apperrors.NewInvalidAmountError()
	}

	product, err := s.productRepo.FindByID(db, req.ProductID)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return nil, apperrors.NewProductNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}

	if product.UserID == buyerID {
		return nil, apperrors.NewSelfNegotiationError()
	}

	var negotiation *models.PriceNegotiation
	err = db.Transaction(func(tx *gorm.DB) error {
		existing, findErr := s.negotiationRepo.FindPendingByProductAndBuyer(tx, product.ID, buyerID)
		switch findErr {
		case nil:
			existing.OfferedPrice = req.OfferedPrice
			existing.Message = req.Message
			negotiation = existing
			return s.negotiationRepo.Update(tx, existing)
		case repositories.ErrNegotiationNotFound:
			negotiation = &models.PriceNegotiation{
				OfferedPrice: req.OfferedPrice,
				Message:      req.Message,
				Status:       models.NegotiationStatusPending,
				ProductID:    product.ID,
				BuyerID:      buyerID,
			}
			return s.negotiationRepo.Create(tx, negotiation)
		default:
			return findErr
		}
	})
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	logger.Info("offer submitted", "negotiation_id", negotiation.ID, "product_id", product.ID, "buyer_id", buyerID)
	return buildNegotiationResponse(negotiation), nil
}

// Respond lets the product owner accept, reject or counter a pending offer.
// A counter stores the owner's price next to the buyer's original offer so
// both positions stay on record; accepting never touches the product's
// listed price.
func (s *negotiationService) Respond(db *gorm.DB, ownerID string, req *dto.RespondRequest) (*dto.NegotiationResponse, error) {
	negotiation, err := s.negotiationRepo.FindByID(db, req.NegotiationID)
	if err != nil {
		if err == repositories.ErrNegotiationNotFound {
			return nil, apperrors.NewNegotiationNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}

	if negotiation.Product.UserID != ownerID {
		return nil, apperrors.NewNegotiationPermissionError()
	}

	if negotiation.Status != models.NegotiationStatusPending {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "negotiation",
			"Offer has already been responded to", http.StatusConflict)
	}

	switch req.Action {
	case "accept":
		negotiation.Status = models.NegotiationStatusAccepted
	case "reject":
		negotiation.Status = models.NegotiationStatusRejected
	case "counter":
		if req.CounterOffer == nil || *req.CounterOffer <= 0 {
			return nil, apperrors.NewInvalidAmountError()
		}
		negotiation.Status = models.NegotiationStatusCountered
		counter := *req.CounterOffer
		negotiation.CounterOffer = &counter
		negotiation.CounterMessage = req.CounterMessage
	default:
		return nil, apperrors.NewBadRequestError("unknown action: " + req.Action)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.negotiationRepo.Update(tx, negotiation)
	}); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	logger.Info("offer response recorded",
		"negotiation_id", negotiation.ID, "action", req.Action, "owner_id", ownerID)
	return buildNegotiationResponse(negotiation), nil
}

// ListForProduct is an owner-only view of all offers on a product, newest
// first, with buyer display names.
func (s *negotiationService) ListForProduct(db *gorm.DB, ownerID string, productID string) (*dto.NegotiationListResponse, error) {
	product, err := s.productRepo.FindByID(db, productID)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return nil, apperrors.NewProductNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}

	if product.UserID != ownerID {
		return nil, apperrors.NewNegotiationPermissionError()
	}

	negotiations, err := s.negotiationRepo.FindByProduct(db, product.ID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]dto.NegotiationResponse, 0, len(negotiations))
	for i := range negotiations {
		responses = append(responses, *buildNegotiationResponse(&negotiations[i]))
	}

	return &dto.NegotiationListResponse{
		Negotiations: responses,
		Total:        int64(len(responses)),
	}, nil
}

func buildNegotiationResponse(negotiation *models.PriceNegotiation) *dto.NegotiationResponse {
	resp := &dto.NegotiationResponse{
		ID:             negotiation.ID,
		ProductID:      negotiation.ProductID,
		BuyerID:        negotiation.BuyerID,
		OfferedPrice:   negotiation.OfferedPrice,
		Message:        negotiation.Message,
		Status:         string(negotiation.Status),
		CounterOffer:   negotiation.CounterOffer,
		CounterMessage: negotiation.CounterMessage,
		CreatedAt:      negotiation.CreatedAt,
		UpdatedAt:      negotiation.UpdatedAt,
	}
	if negotiation.Buyer.ID != "" {
		resp.BuyerName = negotiation.Buyer.FullName
	}
	return resp
}
