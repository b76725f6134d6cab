package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

type RazorpayAdapter struct {
	KeyID     string
	KeySecret string
	// BaseURL is overridable for tests.
	BaseURL    string
	httpClient *http.Client
}

func NewRazorpayAdapter(keyID, keySecret string) *RazorpayAdapter {
	return &RazorpayAdapter{
		KeyID:      keyID,
		KeySecret:  keySecret,
		BaseURL:    razorpayBaseURL,
		httpClient: http.DefaultClient,
	}
}

func (rz *RazorpayAdapter) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	body, _ := json.Marshal(req)

	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost, rz.BaseURL+"/orders", bytes.NewBuffer(body))
	httpReq.SetBasicAuth(rz.KeyID, rz.KeySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := rz.httpClient.Do(httpReq)
	if err != nil {
		return nil, &GatewayError{Op: "create order", Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		// Razorpay error envelope: {"error":{"code":"...","description":"..."}}
		var apiErr struct {
			Error struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		}
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Description != "" {
			return nil, &GatewayError{Op: "create order", Code: apiErr.Error.Code, Message: apiErr.Error.Description}
		}
		return nil, &GatewayError{Op: "create order", Message: fmt.Sprintf("razorpay create order failed: http=%d body=%s", resp.StatusCode, string(raw))}
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, &GatewayError{Op: "create order", Err: fmt.Errorf("decode: %w body=%s", err, string(raw))}
	}

	return &order, nil
}
