package models

// Category is a fixed taxonomy entry, seeded at startup. Deleting one is
// blocked while any product references it.
type Category struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
