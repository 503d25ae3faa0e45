package payments

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"campusfood/internal/dispatch"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// OrderService orchestrates order creation: validate the amount, mint one
// fresh receipt, make exactly one gateway call.
type OrderService struct {
	gateway Gateway
	logger  *zap.SugaredLogger
}

func NewOrderService(gateway Gateway, logger *zap.SugaredLogger) *OrderService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &OrderService{gateway: gateway, logger: logger}
}

func (s *OrderService) CreateOrder(ctx context.Context, payload CreateOrderPayload) (Order, error) {
	if err := validate.Struct(payload); err != nil {
		return Order{}, dispatch.Invalid("amount must be a positive integer in minor units")
	}

	receipt := NewReceipt()

	res, err := s.gateway.CreateOrder(ctx, OrderRequest{
		Amount:   payload.Amount,
		Currency: Currency,
		Receipt:  receipt.ID,
	})
	if err != nil {
		s.logger.Errorw("order creation failed",
			"receipt", receipt.ID,
			"kind", dispatch.KindOf(err),
		)
		return Order{}, err
	}

	s.logger.Infow("order created", "receipt", receipt.ID, "order_id", res.ProviderRef)
	return Order{OrderID: res.ProviderRef}, nil
}
