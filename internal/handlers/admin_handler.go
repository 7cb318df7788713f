package handlers

import (
	"net/http"

	"flohmarkt_backend/internal/middleware"
	"flohmarkt_backend/internal/models"
	"flohmarkt_backend/internal/services"
	"flohmarkt_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the moderation endpoints: product approval, category
// management, user listing and the dashboard counters.
type AdminHandler struct {
	*BaseHandler
	productService  services.ProductService
	categoryService services.CategoryService
	userService     services.UserService
}

func NewAdminHandler(
	base *BaseHandler,
	productService services.ProductService,
	categoryService services.CategoryService,
	userService services.UserService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:     base,
		productService:  productService,
		categoryService: categoryService,
		userService:     userService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/products", h.ListProducts)
		admin.PUT("/products/:id/approve", h.ApproveProduct)
		admin.PUT("/products/:id/reject", h.RejectProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.POST("/categories", h.CreateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/users", h.ListUsers)
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.productService.Dashboard(db, h.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	db := h.GetDB(c)
	page, pageSize := ParsePagination(c)
	status := models.ProductStatus(c.Query("status"))

	response, err := h.productService.ListAll(db, h.GetRole(c), status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) ApproveProduct(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.productService.Approve(db, h.GetRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product approved."})
}

func (h *AdminHandler) RejectProduct(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.productService.Reject(db, h.GetRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product rejected."})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.productService.Delete(db, userID, h.GetRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted."})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.categoryService.Create(db, h.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.categoryService.Delete(db, h.GetRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted."})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	db := h.GetDB(c)
	page, pageSize := ParsePagination(c)

	response, err := h.userService.ListAll(db, h.GetRole(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
