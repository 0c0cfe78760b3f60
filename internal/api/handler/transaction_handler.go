package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

// createTransactionRequest accepts only client-initiated entry types.
// Investment and return entries are produced internally.
type createTransactionRequest struct {
	Type         string          `json:"type"          validate:"required,oneof=deposit withdrawal"`
	Amount       decimal.Decimal `json:"amount"        validate:"required"`
	Description  string          `json:"description"`
	InvestmentID int64           `json:"investment_id"`
}

// TransactionHandler handles HTTP requests for the ledger.
type TransactionHandler struct {
	accounting ports.AccountingService
}

func NewTransactionHandler(accounting ports.AccountingService) *TransactionHandler {
	return &TransactionHandler{accounting: accounting}
}

// List handles GET /v1/transactions, the caller's own ledger.
//
// @Summary      List own transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Transaction
// @Failure      401  {object}  errorResponse
// @Router       /v1/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.accounting.ListLedger(c.Request().Context(), userID))
}

// ListAll handles GET /v1/admin/transactions (admin only).
//
// @Summary      List all transactions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Transaction
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/transactions [get]
func (h *TransactionHandler) ListAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.accounting.ListLedger(c.Request().Context(), 0))
}

// Create handles POST /v1/transactions, deposits and withdrawals.
//
// @Summary      Record a deposit or withdrawal
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTransactionRequest  true  "Transaction details"
// @Success      201   {object}  domain.Transaction
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tx, err := h.accounting.RecordTransaction(c.Request().Context(), ports.RecordTransactionInput{
		UserID:       userID,
		Type:         domain.TransactionType(req.Type),
		Amount:       req.Amount,
		Description:  req.Description,
		InvestmentID: req.InvestmentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tx)
}
