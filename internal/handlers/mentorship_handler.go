package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lciportal_backend/internal/services"
	"lciportal_backend/internal/services/dto"
)

type MentorshipHandler struct {
	*BaseHandler
	mentorshipService services.MentorshipService
}

func NewMentorshipHandler(base *BaseHandler, mentorshipService services.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{
		BaseHandler:       base,
		mentorshipService: mentorshipService,
	}
}

// RegisterRoutes registers the mentorship application routes. The stats
// route must come before the parametrized ones so gin does not swallow
// "stats" as an id.
func (h *MentorshipHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	mentorship := rg.Group("/mentorship")
	{
		mentorship.POST("", h.Create)
		mentorship.GET("", authMW, adminMW, h.ListAll)
		mentorship.GET("/mine", authMW, h.ListMine)
		mentorship.GET("/stats", authMW, adminMW, h.Stats)
		mentorship.PUT("/:id/reply", authMW, adminMW, h.Reply)
		mentorship.PUT("/:id/status", authMW, adminMW, h.SetStatus)
	}
}

func (h *MentorshipHandler) Create(c *gin.Context) {
	var req dto.CreateMentorshipRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.mentorshipService.Create(c.Request.Context(), db, &req, h.MultipartForm(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateMentorshipResponse{
		Message:       "Mentorship application submitted successfully",
		ApplicationID: app.ID,
	})
}

func (h *MentorshipHandler) ListAll(c *gin.Context) {
	db := h.GetDB(c)

	apps, err := h.mentorshipService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// ListMine scopes the listing to the caller's own email.
func (h *MentorshipHandler) ListMine(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	apps, err := h.mentorshipService.ListByApplicant(db, principal.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *MentorshipHandler) Reply(c *gin.Context) {
	var req dto.ReplyMentorshipRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.mentorshipService.Reply(c.Request.Context(), db, c.Param("id"), &req, h.MultipartForm(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *MentorshipHandler) SetStatus(c *gin.Context) {
	var req dto.SetApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.mentorshipService.SetStatus(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *MentorshipHandler) Stats(c *gin.Context) {
	db := h.GetDB(c)

	stats, err := h.mentorshipService.Stats(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
