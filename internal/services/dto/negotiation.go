package dto

import "time"

type SubmitOfferRequest struct {
	ProductID    string  `json:"product_id" validate:"required,uuid"`
	OfferedPrice float64 `json:"offered_price" validate:"required"`
	Message      string  `json:"message" validate:"omitempty"`
}

type RespondRequest struct {
	NegotiationID  string   `json:"negotiation_id" validate:"required,uuid"`
	Action         string   `json:"action" validate:"required,oneof=accept reject counter"`
	CounterOffer   *float64 `json:"counter_offer" validate:"omitempty"`
	CounterMessage string   `json:"counter_message" validate:"omitempty"`
}

type NegotiationResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	BuyerID        string    `json:"buyer_id"`
	BuyerName      string    `json:"buyer_name,omitempty"`
	OfferedPrice   float64   `json:"offered_price"`
	Message        string    `json:"message,omitempty"`
	Status         string    `json:"status"`
	CounterOffer   *float64  `json:"counter_offer,omitempty"`
	CounterMessage string    `json:"counter_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type NegotiationListResponse struct {
	Negotiations []NegotiationResponse `json:"negotiations"`
	Total        int64                 `json:"total"`
}
