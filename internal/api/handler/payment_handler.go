package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/ports"
)

type paymentIntentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// PaymentHandler serves the mocked payment-intent endpoint.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent handles POST /v1/payments/intent. An Idempotency-Key header
// makes the call replay-safe: the same key returns the same client secret.
//
// @Summary      Create a payment intent (mock)
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      paymentIntentRequest  true   "Payment amount"
// @Success      200              {object}  paymentIntentResponse
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/payments/intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intent, err := h.payments.CreateIntent(c.Request().Context(), userID, req.Amount, c.Request().Header.Get("Idempotency-Key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: intent.ClientSecret})
}
