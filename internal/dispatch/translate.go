package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"strings"
	"unicode/utf8"
)

// rawBodyLimit caps how much of a provider response body is kept in Cause.
const rawBodyLimit = 1024

// FromStatus translates a non-success HTTP response from a provider into a
// canonical error. The status and a truncated body are preserved in Cause.
func FromStatus(provider string, status int, body []byte) *Error {
	cause := fmt.Sprintf("http=%d body=%s", status, truncate(string(body), rawBodyLimit))

	switch status {
	case 401, 403:
		return Rejected(provider, "authentication was refused", cause)
	case 429:
		return Rejected(provider, "rate limit reached", cause)
	default:
		return Rejected(provider, fmt.Sprintf("request refused with status %d", status), cause)
	}
}

// FromTransport translates a failed connection attempt. Timeouts and refused
// connections are transient; the caller may retry them.
func FromTransport(provider string, err error) *Error {
	if err == nil {
		return Internal("transport error translation called with nil error")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Unavailable(provider, "deadline exceeded: "+err.Error())
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Unavailable(provider, "timeout: "+err.Error())
	}
	return Unavailable(provider, err.Error())
}

// FromSMTP translates mail-submission failures. Reply codes come back as
// *textproto.Error; 53x means the server refused our credentials, which is a
// rejection, not an outage.
func FromSMTP(provider string, err error) *Error {
	if err == nil {
		return Internal("smtp error translation called with nil error")
	}

	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		cause := fmt.Sprintf("smtp=%d msg=%s", tpErr.Code, strings.TrimSpace(tpErr.Msg))
		switch {
		case tpErr.Code >= 530 && tpErr.Code <= 539:
			return Rejected(provider, "authentication failed", cause)
		case tpErr.Code >= 500:
			return Rejected(provider, fmt.Sprintf("submission refused with code %d", tpErr.Code), cause)
		default:
			// 4xx replies are transient per RFC 5321.
			return Unavailable(provider, cause)
		}
	}

	return FromTransport(provider, err)
}

func truncate(raw string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(raw) <= limit {
		return raw
	}
	return string([]rune(raw)[:limit])
}
