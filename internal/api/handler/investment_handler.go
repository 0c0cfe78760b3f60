package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/ports"
)

type createInvestmentRequest struct {
	PackageID      int64           `json:"package_id"      validate:"required"`
	Amount         decimal.Decimal `json:"amount"          validate:"required"`
	DurationMonths int             `json:"duration_months" validate:"required,min=1"`
}

// InvestmentHandler handles HTTP requests for investment purchases and
// portfolio listings.
type InvestmentHandler struct {
	accounting ports.AccountingService
}

func NewInvestmentHandler(accounting ports.AccountingService) *InvestmentHandler {
	return &InvestmentHandler{accounting: accounting}
}

// List handles GET /v1/investments, the caller's own portfolio.
//
// @Summary      List own investments
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Investment
// @Failure      401  {object}  errorResponse
// @Router       /v1/investments [get]
func (h *InvestmentHandler) List(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.accounting.ListPortfolio(c.Request().Context(), userID))
}

// ListAll handles GET /v1/admin/investments (admin only).
//
// @Summary      List all investments
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Investment
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/investments [get]
func (h *InvestmentHandler) ListAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.accounting.ListPortfolio(c.Request().Context(), 0))
}

// Create handles POST /v1/investments, the purchase workflow. The owning
// user comes from the token, never the body.
//
// @Summary      Purchase an investment
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvestmentRequest  true  "Purchase details"
// @Success      201   {object}  domain.Investment
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/investments [post]
func (h *InvestmentHandler) Create(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inv, err := h.accounting.PurchaseInvestment(c.Request().Context(), ports.PurchaseInput{
		UserID:         userID,
		PackageID:      req.PackageID,
		Amount:         req.Amount,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inv)
}
