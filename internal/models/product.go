package models

// Product is a listing. Only approved products are publicly visible.
// Negotiations and messages cascade-delete with their product.
type Product struct {
	BaseModel
	Name        string        `gorm:"size:200;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Price       float64       `gorm:"not null" json:"price"`
	ImageURL    string        `gorm:"size:500" json:"image_url,omitempty"`
	Status      ProductStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	CategoryID string `gorm:"type:uuid;not null;index" json:"category_id"`
	UserID     string `gorm:"type:uuid;not null;index" json:"user_id"`

	Category     Category           `gorm:"foreignKey:CategoryID" json:"-"`
	User         User               `gorm:"foreignKey:UserID" json:"-"`
	Negotiations []PriceNegotiation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Messages     []Message          `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}
