package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campusfood/internal/dispatch"
)

const razorpayProviderName = "payment processor"

const defaultRazorpayBaseURL = "https://api.razorpay.com"

// RazorpayAdapter creates orders against the Razorpay Orders API using basic
// auth with the key pair. One outbound call per order.
type RazorpayAdapter struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewRazorpayAdapter(keyID, keySecret, baseURL string, timeout time.Duration) *RazorpayAdapter {
	if baseURL == "" {
		baseURL = defaultRazorpayBaseURL
	}
	return &RazorpayAdapter{
		keyID:      keyID,
		keySecret:  keySecret,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *RazorpayAdapter) CreateOrder(ctx context.Context, req OrderRequest) (dispatch.Result, error) {
	payload := map[string]any{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}

	body, _ := json.Marshal(payload)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/orders", bytes.NewBuffer(body))
	if err != nil {
		return dispatch.Result{}, dispatch.Internal("order request build: " + err.Error())
	}
	httpReq.SetBasicAuth(a.keyID, a.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return dispatch.Result{}, dispatch.FromTransport(razorpayProviderName, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return dispatch.Result{}, dispatch.FromStatus(razorpayProviderName, resp.StatusCode, raw)
	}

	var res struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return dispatch.Result{}, dispatch.Internal(fmt.Sprintf("order decode: %v body=%s", err, raw))
	}
	if res.ID == "" {
		return dispatch.Result{}, dispatch.Internal(fmt.Sprintf("order response missing id: body=%s", raw))
	}

	return dispatch.Result{Success: true, ProviderRef: res.ID}, nil
}
