package services_test

import (
	"testing"

	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreate_StartsPending(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "الإلكترونيات")

	resp, err := sc.ProductService.Create(db, seller.ID, &dto.CreateProductRequest{
		Name:       "كاميرا احترافية",
		Price:      1500,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, seller.ID, resp.UserID)

	// Not visible publicly until approved
	list, err := sc.ProductService.ListPublic(db, "", 1, 20)
	require.NoError(t, err)
	assert.Empty(t, list.Products)
}

func TestProductCreate_UnknownCategory(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)

	_, err := sc.ProductService.Create(db, seller.ID, &dto.CreateProductRequest{
		Name:       "شيء ما",
		Price:      10,
		CategoryID: "00000000-0000-0000-0000-000000000000",
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestProductApprove_AdminOnlyAndIdempotent(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "عقارات")
	product := createProduct(t, db, seller, category, 100, models.ProductStatusPending)

	// Regular user is rejected before the product is even looked up
	err := sc.ProductService.Approve(db, models.UserRoleUser, product.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	require.NoError(t, sc.ProductService.Approve(db, models.UserRoleAdmin, product.ID))

	// Re-approving is a no-op, not an error
	require.NoError(t, sc.ProductService.Approve(db, models.UserRoleAdmin, product.ID))

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, models.ProductStatusApproved, stored.Status)

	// Admin may still move it to rejected afterwards
	require.NoError(t, sc.ProductService.Reject(db, models.UserRoleAdmin, product.ID))
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, models.ProductStatusRejected, stored.Status)
}

func TestProductListPublic_OnlyApproved(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "أثاث منزلي")

	createProduct(t, db, seller, category, 100, models.ProductStatusApproved)
	createProduct(t, db, seller, category, 200, models.ProductStatusPending)
	createProduct(t, db, seller, category, 300, models.ProductStatusRejected)

	list, err := sc.ProductService.ListPublic(db, category.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, "approved", list.Products[0].Status)

	// The public detail endpoint hides non-approved products too
	_, err = sc.ProductService.GetPublic(db, list.Products[0].ID)
	assert.NoError(t, err)
}

func TestProductUpdate_OwnerOnlyAndStatusIsAdminOnly(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	other := createUser(t, db, "آخر", "other@test.com", models.UserRoleUser)
	category := createCategory(t, db, "سيارات مستعملة")
	product := createProduct(t, db, seller, category, 5330, models.ProductStatusApproved)

	newName := "سيارة عائلية"

	// A stranger may not touch the product
	_, err := sc.ProductService.Update(db, other.ID, models.UserRoleUser, product.ID, &dto.UpdateProductRequest{Name: &newName})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// The owner may not flip the status directly
	approved := "approved"
	_, err = sc.ProductService.Update(db, seller.ID, models.UserRoleUser, product.ID, &dto.UpdateProductRequest{Status: &approved})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// Plain field updates work for the owner
	resp, err := sc.ProductService.Update(db, seller.ID, models.UserRoleUser, product.ID, &dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, resp.Name)
	assert.Equal(t, 5330.0, resp.Price)
}

func TestProductDelete_AdminOnlyAndCascades(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	buyer := createUser(t, db, "مشتري", "buyer@test.com", models.UserRoleUser)
	category := createCategory(t, db, "كاميرات احترافية")
	product := createProduct(t, db, seller, category, 900, models.ProductStatusApproved)

	negotiation := &models.PriceNegotiation{
		OfferedPrice: 800,
		Status:       models.NegotiationStatusPending,
		ProductID:    product.ID,
		BuyerID:      buyer.ID,
	}
	require.NoError(t, db.Create(negotiation).Error)

	message := &models.Message{
		ProductID:  product.ID,
		SellerID:   seller.ID,
		BuyerName:  "زائر",
		BuyerEmail: "visitor@test.com",
		Body:       "هل المنتج متوفر؟",
	}
	require.NoError(t, db.Create(message).Error)

	// Sellers cannot delete their own listings, only admins can
	err := sc.ProductService.Delete(db, seller.ID, models.UserRoleUser, product.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	admin := createUser(t, db, "مدير", "admin@test.com", models.UserRoleAdmin)
	require.NoError(t, sc.ProductService.Delete(db, admin.ID, models.UserRoleAdmin, product.ID))

	var count int64
	db.Model(&models.PriceNegotiation{}).Where("product_id = ?", product.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Message{}).Where("product_id = ?", product.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count)
	assert.Zero(t, count)
}

func TestAdminDashboard_Counters(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "عقارات")

	createProduct(t, db, seller, category, 100, models.ProductStatusApproved)
	createProduct(t, db, seller, category, 200, models.ProductStatusPending)
	createProduct(t, db, seller, category, 300, models.ProductStatusPending)

	_, err := sc.ProductService.Dashboard(db, models.UserRoleUser)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	resp, err := sc.ProductService.Dashboard(db, models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalUsers)
	assert.Equal(t, int64(3), resp.TotalProducts)
	assert.Equal(t, int64(2), resp.PendingProducts)
	assert.Equal(t, int64(1), resp.ApprovedProducts)
	assert.Equal(t, int64(0), resp.RejectedProducts)
}
