package notifications

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"campusfood/internal/dispatch"
)

// Dispatcher routes one validated OTP request to exactly one registered
// sender. It never fans out and never retries; wrapping a sender with
// dispatch.Retry is a deployment decision.
type Dispatcher struct {
	senders map[string]Sender
	logger  *zap.SugaredLogger
}

func NewDispatcher(logger *zap.SugaredLogger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Dispatcher{
		senders: make(map[string]Sender),
		logger:  logger,
	}
}

// Register binds a provider name to a sender. Called during startup only;
// the registry is read-only once requests start flowing.
func (d *Dispatcher) Register(name string, s Sender) {
	d.senders[name] = s
}

func (d *Dispatcher) SendVerificationCode(ctx context.Context, payload SendOTPPayload, provider string) (dispatch.Result, error) {
	msg, err := ValidatePayload(payload)
	if err != nil {
		return dispatch.Result{}, err
	}

	sender, ok := d.senders[provider]
	if !ok {
		return dispatch.Result{}, dispatch.Invalid(fmt.Sprintf("unknown email provider %q", provider))
	}

	res, err := sender.Send(ctx, msg)
	if err != nil {
		// The OTP code itself stays out of the logs.
		d.logger.Errorw("otp dispatch failed",
			"provider", provider,
			"kind", dispatch.KindOf(err),
		)
		return dispatch.Result{}, err
	}

	d.logger.Infow("otp dispatched", "provider", provider)
	return res, nil
}
