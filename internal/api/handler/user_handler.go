package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autovest/investment-system/internal/core/ports"
)

// UserHandler serves the current-user endpoint and admin user listings.
type UserHandler struct {
	accounting ports.AccountingService
}

func NewUserHandler(accounting ports.AccountingService) *UserHandler {
	return &UserHandler{accounting: accounting}
}

// Me handles GET /v1/me, the authenticated user's own record.
//
// @Summary      Get current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /v1/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.accounting.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ListAll handles GET /v1/admin/users (admin only). The credential hash is
// stripped by the domain.User json tag.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *UserHandler) ListAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.accounting.ListUsers(c.Request().Context()))
}
