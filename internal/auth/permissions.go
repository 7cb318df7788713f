package auth

import "flohmarkt_backend/internal/models"

// CanManageProduct reports whether the caller may mutate a product: the
// owner, or an admin override.
func CanManageProduct(userID string, role models.UserRole, ownerID string) bool {
	return role == models.UserRoleAdmin || userID == ownerID
}

// CanAccessMessages reports whether the caller may read or mutate messages
// on a product: the seller, or an admin override.
func CanAccessMessages(userID string, role models.UserRole, sellerOwnerID string) bool {
	return role == models.UserRoleAdmin || userID == sellerOwnerID
}
