package main

import (
	"net/http"

	"campusfood/internal/notifications"
)

type sendEmailRequest struct {
	notifications.SendOTPPayload
	// Provider optionally overrides the configured default ("relay" or "smtp").
	Provider string `json:"provider,omitempty"`
}

type sendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// sendEmailHandler accepts a send-otp request and forwards it to exactly one
// email provider. Validation failures list every required field at once.
func (app *application) sendEmailHandler(w http.ResponseWriter, r *http.Request) {
	var payload sendEmailRequest
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	provider := payload.Provider
	if provider == "" {
		provider = app.config.otpProvider
	}

	_, err := app.dispatcher.SendVerificationCode(r.Context(), payload.SendOTPPayload, provider)
	if err != nil {
		app.dispatchErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, sendEmailResponse{
		Success: true,
		Message: "Email sent successfully",
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}
