package models

import "time"

type User struct {
	BaseModel
	FullName     string   `gorm:"size:100;not null" json:"fullname"`
	Email        string   `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Phone        string   `gorm:"size:20" json:"phone,omitempty"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	// Password reset
	ResetToken    string     `gorm:"size:100;index" json:"-"`
	ResetTokenExp *time.Time `json:"-"`

	// Relations
	Products     []Product          `gorm:"foreignKey:UserID" json:"-"`
	Negotiations []PriceNegotiation `gorm:"foreignKey:BuyerID" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
