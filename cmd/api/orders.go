package main

import (
	"checkout/internal/payments"
	"context"
	"fmt"
	"math"
	"net/http"
	"time"
)

const (
	orderCurrency = "INR"
	orderProvider = "razorpay"
)

type CreateOrderPayload struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	UPIID  string  `json:"upiId" validate:"omitempty,max=255"`
}

type CreateOrderResponse struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// createOrderHandler godoc
//
//	@Summary		Create a payment order
//	@Description	Validates the amount, creates a Razorpay order and returns the order id plus the publishable key for the checkout widget
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateOrderPayload	true	"Amount in rupees and an optional UPI hint"
//	@Success		200		{object}	CreateOrderResponse
//	@Failure		400		{object}	error	"Invalid amount"
//	@Failure		500		{object}	error	"Gateway failure"
//	@Router			/api/create-order [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload CreateOrderPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// The public contract reports every amount problem the same way.
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("Invalid amount"))
		return
	}

	// Razorpay wants paise. This conversion is deliberately lossy and one
	// way; nothing in the system ever converts back.
	amountPaise := int64(math.Round(payload.Amount * 100))

	req := payments.OrderRequest{
		Amount:   amountPaise,
		Currency: orderCurrency,
		Receipt:  app.receipts.Generate(),
	}
	if payload.UPIID != "" {
		// Opaque hint stored on the gateway order; nothing reads it back.
		req.Notes = map[string]string{"upi_id": payload.UPIID}
	}

	order, err := app.payments.CreateOrder(ctx, orderProvider, req)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	resp := CreateOrderResponse{
		Success:  true,
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    app.config.razorpay.keyID,
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

type VerifyPaymentPayload struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

type VerifyPaymentResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"payment_id,omitempty"`
}

// verifyPaymentHandler godoc
//
//	@Summary		Verify a completed payment
//	@Description	Recomputes the HMAC-SHA256 signature over the order and payment ids and compares it with the one the checkout widget returned. Pure local computation; the gateway is never contacted.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		VerifyPaymentPayload	true	"Identifiers returned by the checkout widget"
//	@Success		200		{object}	VerifyPaymentResponse
//	@Failure		400		{object}	VerifyPaymentResponse	"Invalid signature"
//	@Router			/api/verify-payment [post]
func (app *application) verifyPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var payload VerifyPaymentPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("missing payment verification fields"))
		return
	}

	if !payments.VerifySignature(app.config.razorpay.keySecret, payload.OrderID, payload.PaymentID, payload.Signature) {
		// A mismatch is a normal negative outcome, not a server fault.
		app.logger.Infow("payment signature mismatch", "order_id", payload.OrderID, "payment_id", payload.PaymentID)

		if err := writeJSON(w, http.StatusBadRequest, VerifyPaymentResponse{
			Success: false,
			Message: "Invalid signature",
		}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	resp := VerifyPaymentResponse{
		Success:   true,
		Message:   "Payment verified successfully",
		PaymentID: payload.PaymentID,
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
