package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"flohmarkt_backend/internal/config"
	"flohmarkt_backend/internal/logger"
	"flohmarkt_backend/internal/middleware"
	"flohmarkt_backend/internal/storage"
	"flohmarkt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UploadHandler accepts product images and hands them to the storage
// backend. The returned URL goes into the product's image_url field.
type UploadHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewUploadHandler(base *BaseHandler, store storage.Storage) *UploadHandler {
	return &UploadHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("/images", h.UploadImage)
	}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	cfg := config.GetConfig()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing image file"))
		return
	}
	if fileHeader.Size > cfg.Upload.MaxSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Image exceeds maximum allowed size"))
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !allowedImageType(ext, cfg.Upload.AllowedTypes) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unsupported image type: "+ext))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	url, err := h.store.Save(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "image upload failed", err)
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}

func allowedImageType(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
