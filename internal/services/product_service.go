package services

import (
	"flohmarkt_backend/internal/auth"
	"flohmarkt_backend/internal/logger"
	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/repositories"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ProductService governs the product lifecycle: who may create, mutate and
// delete a listing, and which status transitions are reachable. Products are
// created pending and become publicly visible only after admin approval.
type ProductService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(db *gorm.DB, userID string, role models.UserRole, productID string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(db *gorm.DB, userID string, role models.UserRole, productID string) error

	Approve(db *gorm.DB, role models.UserRole, productID string) error
	Reject(db *gorm.DB, role models.UserRole, productID string) error

	ListPublic(db *gorm.DB, categoryID string, page, pageSize int) (*dto.ProductListResponse, error)
	GetPublic(db *gorm.DB, productID string) (*dto.ProductResponse, error)
	ListMine(db *gorm.DB, userID string) ([]dto.ProductResponse, error)

	// Admin views
	ListAll(db *gorm.DB, role models.UserRole, status models.ProductStatus, page, pageSize int) (*dto.ProductListResponse, error)
	Dashboard(db *gorm.DB, role models.UserRole) (*dto.AdminDashboardResponse, error)
}

type productService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	messageRepo  repositories.MessageRepository
	userRepo     repositories.UserRepository
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		messageRepo:  messageRepo,
		userRepo:     userRepo,
	}
}

func (s *productService) Create(db *gorm.DB, userID string, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.Price < 0 {
		return nil, apperrors.NewInvalidAmountError()
	}

	category, err := s.categoryRepo.FindByID(db, req.CategoryID)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return nil, apperrors.NewCategoryNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Status:      models.ProductStatusPending,
		CategoryID:  category.ID,
		UserID:      userID,
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.productRepo.Create(tx, product)
	}); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	logger.Info("product created", "product_id", product.ID, "owner_id", userID)
	product.Category = *category
	return buildProductResponse(product), nil
}

func (s *productService) Update(db *gorm.DB, userID string, role models.UserRole, productID string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.findProduct(db, productID)
	if err != nil {
		return nil, err
	}

	if !auth.CanManageProduct(userID, role, product.UserID) {
		return nil, apperrors.NewProductPermissionError()
	}

	// Direct status changes are reserved for admins.
	if req.Status != nil && role != models.UserRoleAdmin {
		return nil, apperrors.NewProductPermissionError()
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperrors.NewInvalidAmountError()
		}
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(db, *req.CategoryID); err != nil {
			if err == repositories.ErrCategoryNotFound {
				return nil, apperrors.NewCategoryNotFoundError()
			}
			return nil, apperrors.PersistenceError(err)
		}
		product.CategoryID = *req.CategoryID
	}
	if req.ImageURL != nil {
		// The previous file is orphaned on disk; image garbage collection is
		// not this layer's job.
		product.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		product.Status = models.ProductStatus(*req.Status)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.productRepo.Update(tx, product)
	}); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	logger.Info("product updated", "product_id", product.ID, "by", userID)
	return buildProductResponse(product), nil
}

// Delete is admin-only: regular owners were stripped of delete rights in the
// hardened workflow. Negotiations and messages go with the product.
func (s *productService) Delete(db *gorm.DB, userID string, role models.UserRole, productID string) error {
	if role != models.UserRoleAdmin {
		return apperrors.NewProductPermissionError()
	}

	product, err := s.findProduct(db, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(db, product.ID); err != nil {
		return apperrors.PersistenceError(err)
	}

	logger.Info("product deleted", "product_id", productID, "by", userID)
	return nil
}

func (s *productService) Approve(db *gorm.DB, role models.UserRole, productID string) error {
	return s.setStatus(db, role, productID, models.ProductStatusApproved)
}

func (s *productService) Reject(db *gorm.DB, role models.UserRole, productID string) error {
	return s.setStatus(db, role, productID, models.ProductStatusRejected)
}

// setStatus performs the admin-only transition. Re-applying the current
// status is a no-op; an admin may move a product freely between approved and
// rejected.
func (s *productService) setStatus(db *gorm.DB, role models.UserRole, productID string, status models.ProductStatus) error {
	if role != models.UserRoleAdmin {
		return apperrors.NewForbiddenError("admin access required")
	}

	product, err := s.findProduct(db, productID)
	if err != nil {
		return err
	}

	if product.Status == status {
		return nil
	}

	product.Status = status
	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.productRepo.Update(tx, product)
	}); err != nil {
		return apperrors.PersistenceError(err)
	}

	logger.Info("product status changed", "product_id", productID, "status", status)
	return nil
}

func (s *productService) ListPublic(db *gorm.DB, categoryID string, page, pageSize int) (*dto.ProductListResponse, error) {
	if categoryID != "" {
		if _, err := s.categoryRepo.FindByID(db, categoryID); err != nil {
			if err == repositories.ErrCategoryNotFound {
				return nil, apperrors.NewCategoryNotFoundError()
			}
			return nil, apperrors.PersistenceError(err)
		}
	}

	offset := (page - 1) * pageSize
	products, err := s.productRepo.FindApproved(db, categoryID, pageSize, offset)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	total, err := s.productRepo.CountApproved(db, categoryID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *buildProductResponse(&products[i]))
	}

	return &dto.ProductListResponse{
		Products: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *productService) GetPublic(db *gorm.DB, productID string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindApprovedByID(db, productID)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return nil, apperrors.NewProductNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}
	return buildProductResponse(product), nil
}

func (s *productService) ListMine(db *gorm.DB, userID string) ([]dto.ProductResponse, error) {
	products, err := s.productRepo.FindByOwner(db, userID)
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *buildProductResponse(&products[i]))
	}
	return responses, nil
}

func (s *productService) ListAll(db *gorm.DB, role models.UserRole, status models.ProductStatus, page, pageSize int) (*dto.ProductListResponse, error) {
	if role != models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("admin access required")
	}
	if status != "" && !models.ValidProductStatus(status) {
		return nil, apperrors.NewBadRequestError("unknown product status: " + string(status))
	}

	products, total, err := s.productRepo.FindWithFilter(db, repositories.ProductFilter{
		Status: status,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *buildProductResponse(&products[i]))
	}

	return &dto.ProductListResponse{
		Products: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *productService) Dashboard(db *gorm.DB, role models.UserRole) (*dto.AdminDashboardResponse, error) {
	if role != models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("admin access required")
	}

	resp := &dto.AdminDashboardResponse{}
	var err error

	if resp.TotalUsers, err = s.userRepo.CountAll(db); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	if resp.PendingProducts, err = s.productRepo.CountByStatus(db, models.ProductStatusPending); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	if resp.ApprovedProducts, err = s.productRepo.CountByStatus(db, models.ProductStatusApproved); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	if resp.RejectedProducts, err = s.productRepo.CountByStatus(db, models.ProductStatusRejected); err != nil {
		return nil, apperrors.PersistenceError(err)
	}
	resp.TotalProducts = resp.PendingProducts + resp.ApprovedProducts + resp.RejectedProducts

	if resp.UnreadMessages, err = s.messageRepo.CountUnread(db); err != nil {
		return nil, apperrors.PersistenceError(err)
	}

	return resp, nil
}

func (s *productService) findProduct(db *gorm.DB, productID string) (*models.Product, error) {
	product, err := s.productRepo.FindByID(db, productID)
	if err != nil {
		if err == repositories.ErrProductNotFound {
			return nil, apperrors.NewProductNotFoundError()
		}
		return nil, apperrors.PersistenceError(err)
	}
	return product, nil
}

func buildProductResponse(product *models.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Status:      string(product.Status),
		CategoryID:  product.CategoryID,
		UserID:      product.UserID,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Category.ID != "" {
		resp.CategoryName = product.Category.Name
	}
	if product.User.ID != "" {
		resp.SellerName = product.User.FullName
	}
	return resp
}
