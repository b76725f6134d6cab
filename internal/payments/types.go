package payments

// OrderRequest is what we send to the gateway. Amount is in the minor
// currency unit (paise for INR); the major-to-minor conversion happens
// before this struct is built and is never reversed.
type OrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Order is the gateway-side record for an intended payment, as Razorpay
// returns it. Nothing here is persisted; it lives for one request.
type Order struct {
	ID         string `json:"id"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
}
