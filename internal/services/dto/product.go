package dto

import "time"

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=200"`
	Description string  `json:"description" validate:"omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
	ImageURL    string  `json:"image_url" validate:"omitempty,max=500"`
}

// UpdateProductRequest uses pointers so absent fields stay untouched.
// Status is only honored for admin callers.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string  `json:"description" validate:"omitempty"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"category_id" validate:"omitempty,uuid"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,max=500"`
	Status      *string  `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url,omitempty"`
	Status       string    `json:"status"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	UserID       string    `json:"user_id"`
	SellerName   string    `json:"seller_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// AdminDashboardResponse mirrors the admin panel counters.
type AdminDashboardResponse struct {
	TotalUsers       int64 `json:"total_users"`
	TotalProducts    int64 `json:"total_products"`
	PendingProducts  int64 `json:"pending_products"`
	ApprovedProducts int64 `json:"approved_products"`
	RejectedProducts int64 `json:"rejected_products"`
	UnreadMessages   int64 `json:"unread_messages"`
}
