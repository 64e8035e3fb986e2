package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lciportal_backend/internal/services"
	"lciportal_backend/internal/services/dto"
)

type QuoteHandler struct {
	*BaseHandler
	quoteService services.QuoteService
}

func NewQuoteHandler(base *BaseHandler, quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler:  base,
		quoteService: quoteService,
	}
}

// RegisterRoutes registers the quote routes. Submission is public,
// listing all quotes and replying are admin-only, the rest require a
// signed-in client.
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	quotes := rg.Group("/quotes")
	{
		quotes.POST("", h.Create)
		quotes.GET("", authMW, adminMW, h.ListAll)
		quotes.GET("/mine", authMW, h.ListMine)
		quotes.PUT("/:id/status", authMW, adminMW, h.Reply)
		quotes.PUT("/:id/accept", authMW, h.Accept)
		quotes.PUT("/:id/decline", authMW, h.Decline)
	}
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	db := h.GetDB(c)

	quote, err := h.quoteService.Create(c.Request.Context(), db, &req, h.MultipartForm(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateQuoteResponse{
		Message: "Quote request submitted successfully",
		QuoteID: quote.ID,
	})
}

func (h *QuoteHandler) ListAll(c *gin.Context) {
	db := h.GetDB(c)

	quotes, err := h.quoteService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// ListMine scopes the listing to the caller's own email. The email comes
// from the resolved principal, never from query input.
func (h *QuoteHandler) ListMine(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	quotes, err := h.quoteService.ListByRequester(db, principal.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

func (h *QuoteHandler) Reply(c *gin.Context) {
	var req dto.UpdateQuoteStatusRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	db := h.GetDB(c)

	quote, err := h.quoteService.AdminReply(c.Request.Context(), db, c.Param("id"), &req, h.MultipartForm(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *QuoteHandler) Accept(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	quote, err := h.quoteService.Accept(c.Request.Context(), db, principal, c.Param("id"), h.MultipartForm(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *QuoteHandler) Decline(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	quote, err := h.quoteService.Decline(db, principal, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
