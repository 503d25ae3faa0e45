package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"campusfood/internal/dispatch"
)

const relayProviderName = "email relay"

// RelayAdapter sends the OTP through an EmailJS-style relay API. The relay
// renders its own template from template_params and forwards the mail; the
// gateway never talks SMTP on this path.
type RelayAdapter struct {
	endpoint   string
	origin     string
	httpClient *http.Client
}

func NewRelayAdapter(endpoint, origin string, timeout time.Duration) *RelayAdapter {
	return &RelayAdapter{
		endpoint:   endpoint,
		origin:     origin,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *RelayAdapter) Send(ctx context.Context, msg OTPMessage) (dispatch.Result, error) {
	params := map[string]string{
		"to_email":  msg.Email,
		"otp_code":  msg.Code,
		"app_name":  AppName,
		"from_name": FromName,
		"subject":   Subject,
		"message":   relayNote,
	}
	// Caller metadata rides along as extra template params but never
	// overrides the reserved ones.
	for k, v := range msg.Metadata {
		if _, reserved := params[k]; !reserved {
			params[k] = v
		}
	}

	payload := map[string]any{
		"service_id":      msg.ServiceID,
		"template_id":     msg.TemplateID,
		"user_id":         msg.UserID,
		"template_params": params,
	}

	body, _ := json.Marshal(payload)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return dispatch.Result{}, dispatch.Internal("relay request build: " + err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Origin", a.origin)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return dispatch.Result{}, dispatch.FromTransport(relayProviderName, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	// The relay reports success only with 200.
	if resp.StatusCode != http.StatusOK {
		return dispatch.Result{}, dispatch.FromStatus(relayProviderName, resp.StatusCode, raw)
	}

	return dispatch.Result{Success: true}, nil
}
