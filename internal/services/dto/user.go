package dto

import "time"

type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"fullname" validate:"omitempty,notblank,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}
