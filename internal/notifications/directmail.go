package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	mail "gopkg.in/mail.v2"

	"campusfood/internal/dispatch"
)

const directMailProviderName = "mail submission"

// DirectMailAdapter delivers the OTP mail itself over an authenticated SMTP
// session, with a plain-text body and an HTML alternative.
type DirectMailAdapter struct {
	dialer *mail.Dialer
	from   string
}

func NewDirectMailAdapter(host string, port int, username, password, from string, timeout time.Duration) *DirectMailAdapter {
	d := mail.NewDialer(host, port, username, password)
	d.Timeout = timeout
	d.StartTLSPolicy = mail.MandatoryStartTLS

	return &DirectMailAdapter{dialer: d, from: from}
}

func (a *DirectMailAdapter) Send(ctx context.Context, msg OTPMessage) (dispatch.Result, error) {
	if err := ctx.Err(); err != nil {
		return dispatch.Result{}, dispatch.FromTransport(directMailProviderName, err)
	}

	m, id := a.buildMessage(msg)

	if err := a.dialer.DialAndSend(m); err != nil {
		return dispatch.Result{}, dispatch.FromSMTP(directMailProviderName, err)
	}

	return dispatch.Result{Success: true, ProviderRef: id}, nil
}

// buildMessage assembles the outbound mail and its Message-Id, which doubles
// as the provider reference on success.
func (a *DirectMailAdapter) buildMessage(msg OTPMessage) (*mail.Message, string) {
	id := fmt.Sprintf("<%s@campusfood>", uuid.NewString())

	m := mail.NewMessage()
	m.SetHeader("From", m.FormatAddress(a.from, AppName))
	m.SetHeader("To", msg.Email)
	m.SetHeader("Subject", Subject)
	m.SetHeader("Message-Id", id)
	m.SetBody("text/plain", renderText(msg.Code))
	m.AddAlternative("text/html", renderHTML(msg.Code))

	return m, id
}
