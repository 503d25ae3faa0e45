package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campusfood/internal/dispatch"
)

func otpMessage() OTPMessage {
	return OTPMessage{
		Email:      "student@campus.edu",
		Code:       "934217",
		ServiceID:  "s1",
		TemplateID: "t1",
		UserID:     "u1",
	}
}

func TestRelaySendSuccess(t *testing.T) {
	var (
		gotOrigin string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOrigin = r.Header.Get("Origin")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "OK")
	}))
	defer srv.Close()

	adapter := NewRelayAdapter(srv.URL, "https://campusfood.example", 5*time.Second)

	res, err := adapter.Send(context.Background(), otpMessage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatal("expected success result")
	}
	if gotOrigin != "https://campusfood.example" {
		t.Fatalf("expected declared origin header, got %q", gotOrigin)
	}

	var envelope struct {
		ServiceID      string            `json:"service_id"`
		TemplateID     string            `json:"template_id"`
		UserID         string            `json:"user_id"`
		TemplateParams map[string]string `json:"template_params"`
	}
	if err := json.Unmarshal(gotBody, &envelope); err != nil {
		t.Fatalf("relay body is not valid JSON: %v", err)
	}
	if envelope.ServiceID != "s1" || envelope.TemplateID != "t1" || envelope.UserID != "u1" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if envelope.TemplateParams["to_email"] != "student@campus.edu" {
		t.Fatalf("recipient not carried, got %q", envelope.TemplateParams["to_email"])
	}
	if envelope.TemplateParams["otp_code"] != "934217" {
		t.Fatalf("code truncated or moved, got %q", envelope.TemplateParams["otp_code"])
	}
}

// The code and recipient must each land in exactly one field of the outbound
// body: the relay template interpolates them itself.
func TestRelayBodyCarriesCodeAndRecipientOnce(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	adapter := NewRelayAdapter(srv.URL, "https://campusfood.example", 5*time.Second)
	msg := otpMessage()

	if _, err := adapter.Send(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := strings.Count(string(gotBody), msg.Code); n != 1 {
		t.Fatalf("expected the code in exactly one field, found %d occurrences", n)
	}
	if n := strings.Count(string(gotBody), msg.Email); n != 1 {
		t.Fatalf("expected the recipient in exactly one field, found %d occurrences", n)
	}
}

func TestRelaySendRejectedStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unauthorized", http.StatusUnauthorized, "bad user id"},
		{"server error", http.StatusInternalServerError, "relay exploded"},
		{"created is not success", http.StatusCreated, "unexpected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			adapter := NewRelayAdapter(srv.URL, "https://campusfood.example", 5*time.Second)

			_, err := adapter.Send(context.Background(), otpMessage())
			if dispatch.KindOf(err) != dispatch.KindProviderRejected {
				t.Fatalf("expected provider_rejected, got %v", err)
			}

			var de *dispatch.Error
			if !errors.As(err, &de) {
				t.Fatalf("expected canonical error, got %T", err)
			}
			if !strings.Contains(de.Cause, tt.body) {
				t.Fatalf("expected provider body in cause, got %q", de.Cause)
			}
		})
	}
}

func TestRelaySendConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	adapter := NewRelayAdapter(srv.URL, "https://campusfood.example", time.Second)

	_, err := adapter.Send(context.Background(), otpMessage())
	if dispatch.KindOf(err) != dispatch.KindProviderUnavailable {
		t.Fatalf("expected provider_unavailable, got %v", err)
	}
}
