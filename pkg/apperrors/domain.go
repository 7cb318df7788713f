package apperrors

import (
	"net/http"
)

/*
Factories for the marketplace domains. Every error a service returns to a
handler goes through one of these, so codes and HTTP statuses stay uniform.
*/

// --- products ---

func NewProductNotFoundError() *AppError {
	return New(CodeNotFound, "product", "Product not found", http.StatusNotFound)
}

func NewCategoryNotFoundError() *AppError {
	return New(CodeNotFound, "category", "Category not found", http.StatusNotFound)
}

func NewCategoryInUseError() *AppError {
	return New(CodeConflict, "category", "Category still has products and cannot be deleted", http.StatusConflict)
}

func NewProductPermissionError() *AppError {
	return New(CodeForbidden, "product", "Not allowed to modify this product", http.StatusForbidden)
}

// --- negotiations ---

func NewNegotiationNotFoundError() *AppError {
	return New(CodeNotFound, "negotiation", "Negotiation not found", http.StatusNotFound)
}

// NewSelfNegotiationError rejects an offer from the product's own seller.
func NewSelfNegotiationError() *AppError {
	return New(CodeSelfNegotiation, "negotiation", "Cannot negotiate the price of your own product", http.StatusBadRequest)
}

// NewInvalidAmountError rejects a non-positive offered or counter price.
func NewInvalidAmountError() *AppError {
	return New(CodeInvalidAmount, "negotiation", "Price must be a positive amount", http.StatusBadRequest)
}

func NewNegotiationPermissionError() *AppError {
	return New(CodeForbidden, "negotiation", "Not allowed to respond to this offer", http.StatusForbidden)
}

// --- messages ---

func NewMessageNotFoundError() *AppError {
	return New(CodeNotFound, "message", "Message not found", http.StatusNotFound)
}

func NewMessagePermissionError() *AppError {
	return New(CodeForbidden, "message", "Not allowed to access this message", http.StatusForbidden)
}

// --- users ---

func NewUserNotFoundError() *AppError {
	return New(CodeNotFound, "user", "User not found", http.StatusNotFound)
}

func NewEmailTakenError() *AppError {
	return New(CodeAlreadyExists, "user", "Email is already registered", http.StatusConflict)
}

func NewInvalidCredentialsError() *AppError {
	return New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
}

func NewResetTokenError() *AppError {
	return New(CodeInvalidToken, "auth", "Password reset link is invalid or has expired", http.StatusBadRequest)
}
