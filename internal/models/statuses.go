package models

type UserRole string
type ProductStatus string
type NegotiationStatus string

// The status and role strings are persisted verbatim; external consumers
// depend on these exact values.
const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	ProductStatusPending  ProductStatus = "pending"
	ProductStatusApproved ProductStatus = "approved"
	ProductStatusRejected ProductStatus = "rejected"

	NegotiationStatusPending   NegotiationStatus = "pending"
	NegotiationStatusAccepted  NegotiationStatus = "accepted"
	NegotiationStatusRejected  NegotiationStatus = "rejected"
	NegotiationStatusCountered NegotiationStatus = "countered"
)

// ValidProductStatus reports whether s is one of the three product states.
func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductStatusPending, ProductStatusApproved, ProductStatusRejected:
		return true
	}
	return false
}
