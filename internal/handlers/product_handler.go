package handlers

import (
	"net/http"

	"flohmarkt_backend/internal/middleware"
	"flohmarkt_backend/internal/services"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	*BaseHandler
	productService services.ProductService
}

func NewProductHandler(base *BaseHandler, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    base,
		productService: productService,
	}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.ListPublic)
		products.GET("/:id", h.GetPublic)
	}

	authed := rg.Group("/products")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Create)
		authed.PUT("/:id", h.Update)
	}

	mine := rg.Group("/my-products")
	mine.Use(middleware.AuthMiddleware())
	{
		mine.GET("", h.ListMine)
	}
}

// ListPublic returns approved products, optionally filtered by category.
func (h *ProductHandler) ListPublic(c *gin.Context) {
	db := h.GetDB(c)
	page, pageSize := ParsePagination(c)
	categoryID := c.Query("category_id")

	response, err := h.productService.ListPublic(db, categoryID, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProductHandler) GetPublic(c *gin.Context) {
	db := h.GetDB(c)

	response, err := h.productService.GetPublic(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProductHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.productService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ProductHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	productID := c.Param("id")
	if productID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing product id"))
		return
	}

	db := h.GetDB(c)

	response, err := h.productService.Update(db, userID, h.GetRole(c), productID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProductHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	products, err := h.productService.ListMine(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
