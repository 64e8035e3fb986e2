package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lciportal_backend/internal/services"
	"lciportal_backend/internal/services/dto"
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

// RegisterRoutes registers the contact message routes. Submission is
// public; everything admin-facing sits behind the admin middleware.
func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	messages := rg.Group("/messages")
	{
		messages.POST("", h.Create)
		messages.GET("", authMW, adminMW, h.ListAll)
		messages.GET("/mine", authMW, h.ListMine)
		messages.PUT("/:id/reply", authMW, adminMW, h.Reply)
		messages.PUT("/:id/status", authMW, adminMW, h.SetStatus)
	}
}

func (h *MessageHandler) Create(c *gin.Context) {
	var req dto.CreateMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	message, err := h.messageService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Message sent successfully",
		"messageId": message.ID,
	})
}

func (h *MessageHandler) ListAll(c *gin.Context) {
	db := h.GetDB(c)

	messages, err := h.messageService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ListMine scopes the listing to the caller's own email.
func (h *MessageHandler) ListMine(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	messages, err := h.messageService.ListBySender(db, principal.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) Reply(c *gin.Context) {
	var req dto.ReplyMessageRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	db := h.GetDB(c)

	message, err := h.messageService.Reply(c.Request.Context(), db, c.Param("id"), &req, h.MultipartForm(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *MessageHandler) SetStatus(c *gin.Context) {
	var req dto.SetMessageStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	message, err := h.messageService.SetStatus(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}
