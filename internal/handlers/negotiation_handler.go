package handlers

import (
	"net/http"

	"flohmarkt_backend/internal/middleware"
	"flohmarkt_backend/internal/services"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NegotiationHandler struct {
	*BaseHandler
	negotiationService services.NegotiationService
}

func NewNegotiationHandler(base *BaseHandler, negotiationService services.NegotiationService) *NegotiationHandler {
	return &NegotiationHandler{
		BaseHandler:        base,
		negotiationService: negotiationService,
	}
}

func (h *NegotiationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	negotiations := rg.Group("/negotiations")
	negotiations.Use(middleware.AuthMiddleware())
	{
		negotiations.POST("", h.SubmitOffer)
		negotiations.POST("/:id/respond", h.Respond)
	}

	products := rg.Group("/products")
	products.Use(middleware.AuthMiddleware())
	{
		products.GET("/:id/negotiations", h.ListForProduct)
	}
}

func (h *NegotiationHandler) SubmitOffer(c *gin.Context) {
	buyerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitOfferRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.negotiationService.SubmitOffer(db, buyerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *NegotiationHandler) Respond(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}
	req.NegotiationID = c.Param("id")
	if !h.Validate(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.negotiationService.Respond(db, ownerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *NegotiationHandler) ListForProduct(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.negotiationService.ListForProduct(db, ownerID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
