package payments

import (
	"context"

	"campusfood/internal/dispatch"
)

// Currency is fixed for this deployment. The gateway never trusts a
// caller-supplied currency.
const Currency = "INR"

// CreateOrderPayload is the raw inbound shape for the create-order operation.
// Amount is in minor units (paise).
type CreateOrderPayload struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// OrderRequest is what actually goes to the payment processor. Receipt is the
// idempotency anchor: resubmitting the same receipt lets the processor
// recognize and merge duplicates.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
}

// Order is the caller-facing result of a created order.
type Order struct {
	OrderID string `json:"order_id"`
}

// Gateway creates one provider-side order per request.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (dispatch.Result, error)
}
