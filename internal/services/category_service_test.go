package services_test

import (
	"testing"

	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate_AdminOnlyAndUnique(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})

	_, err := sc.CategoryService.Create(db, models.UserRoleUser, &dto.CreateCategoryRequest{Name: "عقارات"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	resp, err := sc.CategoryService.Create(db, models.UserRoleAdmin, &dto.CreateCategoryRequest{Name: "عقارات"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	_, err = sc.CategoryService.Create(db, models.UserRoleAdmin, &dto.CreateCategoryRequest{Name: "عقارات"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestCategoryDelete_BlockedWhileInUse(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sc := newTestContainer(t, &fakeMailer{})
	seller := createUser(t, db, "بائع", "seller@test.com", models.UserRoleUser)
	category := createCategory(t, db, "سيارات مستعملة")
	product := createProduct(t, db, seller, category, 9000, models.ProductStatusApproved)

	err := sc.CategoryService.Delete(db, models.UserRoleAdmin, category.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)

	// Once the product is gone, deletion goes through
	admin := createUser(t, db, "مدير", "admin@test.com", models.UserRoleAdmin)
	require.NoError(t, sc.ProductService.Delete(db, admin.ID, models.UserRoleAdmin, product.ID))
	require.NoError(t, sc.CategoryService.Delete(db, models.UserRoleAdmin, category.ID))

	list, err := sc.CategoryService.List(db)
	require.NoError(t, err)
	assert.Empty(t, list)
}
