package dispatch

import (
	"context"
	"errors"
	"net/textproto"
	"strings"
	"testing"
)

func TestFromStatusAuthFailure(t *testing.T) {
	err := FromStatus("email relay", 401, []byte(`{"error":"bad user id"}`))

	if err.Kind != KindProviderRejected {
		t.Fatalf("expected provider_rejected, got %s", err.Kind)
	}
	if !strings.Contains(err.Cause, "http=401") {
		t.Fatalf("expected status in cause, got %q", err.Cause)
	}
	if !strings.Contains(err.Cause, "bad user id") {
		t.Fatalf("expected body in cause, got %q", err.Cause)
	}
}

func TestFromStatusServerError(t *testing.T) {
	err := FromStatus("email relay", 500, []byte("relay exploded"))

	if err.Kind != KindProviderRejected {
		t.Fatalf("expected provider_rejected, got %s", err.Kind)
	}
	if !strings.Contains(err.Cause, "relay exploded") {
		t.Fatalf("expected body captured in cause, got %q", err.Cause)
	}
	if strings.Contains(err.Message, "relay exploded") {
		t.Fatalf("provider body must not leak into the caller message: %q", err.Message)
	}
}

func TestFromStatusTruncatesLongBodies(t *testing.T) {
	body := []byte(strings.Repeat("x", 5000))
	err := FromStatus("payment processor", 400, body)

	if len(err.Cause) > 1100 {
		t.Fatalf("expected truncated cause, got %d bytes", len(err.Cause))
	}
}

func TestFromTransport(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"deadline", context.DeadlineExceeded},
		{"refused", errors.New("dial tcp 127.0.0.1:9: connect: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTransport("email relay", tt.err)
			if got.Kind != KindProviderUnavailable {
				t.Fatalf("expected provider_unavailable, got %s", got.Kind)
			}
		})
	}
}

func TestFromSMTP(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"auth failed", &textproto.Error{Code: 535, Msg: "authentication credentials invalid"}, KindProviderRejected},
		{"mailbox rejected", &textproto.Error{Code: 550, Msg: "no such user"}, KindProviderRejected},
		{"greylisted", &textproto.Error{Code: 421, Msg: "try again later"}, KindProviderUnavailable},
		{"dial failure", errors.New("dial tcp: connection refused"), KindProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSMTP("mail submission", tt.err)
			if got.Kind != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got.Kind)
			}
		})
	}
}

func TestFromSMTPAuthSubReason(t *testing.T) {
	got := FromSMTP("mail submission", &textproto.Error{Code: 535, Msg: "bad credentials"})

	if !strings.Contains(got.Message, "authentication failed") {
		t.Fatalf("expected distinguishable auth sub-reason, got %q", got.Message)
	}
	if strings.Contains(got.Message, "bad credentials") {
		t.Fatalf("server detail must stay in cause, got %q", got.Message)
	}
}

func TestKindOfUnrecognizedError(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != KindInternal {
		t.Fatalf("expected internal for unrecognized error, got %s", got)
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(Rejected("p", "nope", "")) {
		t.Fatal("rejections must not be retryable")
	}
	if Retryable(Invalid("bad input")) {
		t.Fatal("invalid input must not be retryable")
	}
	if !Retryable(Unavailable("p", "timeout")) {
		t.Fatal("unavailable must be retryable")
	}
}
