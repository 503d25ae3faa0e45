package main

import (
	"net/http"
	"time"
)

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":    "OK",
		"env":       app.config.env,
		"version":   version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := writeJSON(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
