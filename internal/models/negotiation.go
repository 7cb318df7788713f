package models

// PriceNegotiation is a buyer's offer against a product. At most one pending
// row may exist per (product, buyer); a partial unique index in the
// migration enforces it.
type PriceNegotiation struct {
	BaseModel
	OfferedPrice float64           `gorm:"not null" json:"offered_price"`
	Message      string            `gorm:"type:text" json:"message"`
	Status       NegotiationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// A counter keeps the buyer's original offer intact; both positions stay
	// visible to the seller.
	CounterOffer   *float64 `json:"counter_offer,omitempty"`
	CounterMessage string   `gorm:"type:text" json:"counter_message,omitempty"`

	ProductID string `gorm:"type:uuid;not null;index" json:"product_id"`
	BuyerID   string `gorm:"type:uuid;not null;index" json:"buyer_id"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
	Buyer   User    `gorm:"foreignKey:BuyerID" json:"-"`
}
