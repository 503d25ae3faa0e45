package main

import (
	"net/http"

	"campusfood/internal/payments"
)

// createOrderHandler creates a payment-processor order for the given amount
// in minor units. The currency and receipt are never taken from the caller.
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var payload payments.CreateOrderPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orders.CreateOrder(r.Context(), payload)
	if err != nil {
		app.dispatchErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}
