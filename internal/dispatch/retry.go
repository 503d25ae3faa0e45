package dispatch

import (
	"context"
	"time"
)

// Retry wraps a dispatch call with bounded exponential backoff. Only
// transient failures (KindProviderUnavailable) are retried; rejections and
// invalid input return immediately. The core never calls this itself — wiring
// it in is a deployment choice.
func Retry(ctx context.Context, attempts int, backoff time.Duration, fn func(context.Context) (Result, error)) (Result, error) {
	if attempts < 1 {
		attempts = 1
	}

	var (
		res Result
		err error
	)
	for i := 0; i < attempts; i++ {
		res, err = fn(ctx)
		if err == nil || !Retryable(err) {
			return res, err
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return Result{}, Unavailable("provider", "retry abandoned: "+ctx.Err().Error())
		case <-time.After(backoff << i):
		}
	}
	return res, err
}
