package main

import (
	"errors"
	"net/http"
	"time"

	"campusfood/internal/dispatch"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter.String())
	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter.String())
}

// dispatchErrorResponse maps canonical gateway errors onto HTTP statuses:
// invalid input is the caller's fault, every provider-side failure surfaces
// as 500 with a caller-safe message. The diagnostic cause stays in the logs.
func (app *application) dispatchErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var de *dispatch.Error
	if !errors.As(err, &de) {
		app.internalServerError(w, r, err)
		return
	}

	switch de.Kind {
	case dispatch.KindInvalidInput:
		app.logger.Warnw("invalid request", "path", r.URL.Path, "message", de.Message)
		writeJSONError(w, http.StatusBadRequest, de.Message)
	case dispatch.KindProviderRejected, dispatch.KindProviderUnavailable:
		app.logger.Errorw("provider failure",
			"path", r.URL.Path,
			"kind", de.Kind,
			"message", de.Message,
			"cause", de.Cause,
		)
		writeJSONError(w, http.StatusInternalServerError, de.Message)
	default:
		app.logger.Errorw("gateway failure", "path", r.URL.Path, "cause", de.Cause)
		writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
	}
}
