package payments

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Receipt is the idempotency anchor handed to the payment processor. Exactly
// one is generated per order request and none is ever reused.
type Receipt struct {
	ID string
}

// NewReceipt builds a receipt unique within the process even under concurrent
// calls. Wall-clock time alone can collide, so a uuid nonce is appended.
func NewReceipt() Receipt {
	nonce := uuid.NewString()[:8]
	return Receipt{
		ID: fmt.Sprintf("receipt_order_%d_%s", time.Now().UnixMilli(), nonce),
	}
}
