package notifications

import (
	"context"

	"campusfood/internal/dispatch"
)

// Provider names registered on the Dispatcher. Deployments pick a default;
// callers may override per request.
const (
	ProviderRelay      = "relay"
	ProviderDirectMail = "smtp"
)

const (
	AppName  = "Campus Food App"
	FromName = "Campus Food App Team"
	Subject  = "Verification Code - Campus Food App"
)

// SendOTPPayload is the raw inbound shape for the send-otp operation. Field
// names mirror the public API contract.
type SendOTPPayload struct {
	Email      string            `json:"email" validate:"required,email,max=255"`
	Code       string            `json:"otp" validate:"required"`
	ServiceID  string            `json:"service_id" validate:"required"`
	TemplateID string            `json:"template_id" validate:"required"`
	UserID     string            `json:"user_id" validate:"required"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// OTPMessage is a validated verification request. It lives for exactly one
// dispatch attempt; the code is never logged or persisted.
type OTPMessage struct {
	Email      string
	Code       string
	ServiceID  string
	TemplateID string
	UserID     string
	Metadata   map[string]string
}

// Sender delivers one OTP message through one provider.
type Sender interface {
	Send(ctx context.Context, msg OTPMessage) (dispatch.Result, error)
}
