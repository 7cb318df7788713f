package handlers

import (
	"net/http"

	"flohmarkt_backend/internal/middleware"
	"flohmarkt_backend/internal/services"
	"flohmarkt_backend/internal/services/dto"
	"flohmarkt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Sending an inquiry needs no account: buyers identify themselves by
	// name and email in the body.
	rg.POST("/messages", h.SendInquiry)

	messages := rg.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.GET("", h.Inbox)
		messages.GET("/unread-count", h.UnreadCount)
		messages.GET("/:id/thread", h.GetThread)
		messages.POST("/:id/reply", h.Reply)
		messages.PATCH("/:id/read", h.MarkRead)
	}
}

func (h *MessageHandler) SendInquiry(c *gin.Context) {
	var req dto.SendInquiryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	outcome, err := h.messageService.SendInquiry(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, outcome)
}

func (h *MessageHandler) Inbox(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	page, pageSize := ParsePagination(c)

	response, err := h.messageService.Inbox(db, userID, h.GetRole(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.messageService.UnreadCount(db, userID, h.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MessageHandler) GetThread(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.messageService.GetThread(db, userID, h.GetRole(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MessageHandler) Reply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}
	req.MessageID = c.Param("id")
	if !h.Validate(c, &req) {
		return
	}

	db := h.GetDB(c)

	outcome, err := h.messageService.Reply(db, userID, h.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, outcome)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}
	req.MessageID = c.Param("id")
	if !h.Validate(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.messageService.MarkRead(db, userID, h.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
