package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lciportal_backend/internal/services"
	"lciportal_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes registers the user routes. The dashboard route must
// come before the listing so it is matched literally.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.GET("/dashboard", authMW, h.Dashboard)
		users.GET("", authMW, adminMW, h.ListAll)
		users.PUT("/:id/status", authMW, adminMW, h.SetStatus)
	}
}

// Dashboard returns the caller's profile together with their quotes and
// messages.
func (h *UserHandler) Dashboard(c *gin.Context) {
	principal, ok := h.MustPrincipal(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	resp, err := h.userService.Dashboard(db, principal.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) ListAll(c *gin.Context) {
	db := h.GetDB(c)

	users, err := h.userService.ListUsers(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) SetStatus(c *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateStatus(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
