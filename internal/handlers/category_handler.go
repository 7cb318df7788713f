package handlers

import (
	"net/http"

	"flohmarkt_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.List)
}

func (h *CategoryHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	categories, err := h.categoryService.List(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
