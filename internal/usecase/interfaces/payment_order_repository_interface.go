package interfaces

import (
	"context"

	"invite_studio/internal/domain/entities"
)

// IPaymentOrderRepository abstracts DynamoDB persistence for PaymentOrder.
//
// GetByID returns a zero PaymentOrder when the id is unknown. MarkPaid moves
// created or failed orders, MarkFailed only created ones; both report whether
// the row changed.
type IPaymentOrderRepository interface {
	Create(ctx context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error)
	GetByID(ctx context.Context, id string) (entities.PaymentOrder, error)
	ListByCustomizationID(ctx context.Context, customizationID string) ([]entities.PaymentOrder, error)
	MarkPaid(ctx context.Context, id, paymentID string) (bool, error)
	MarkFailed(ctx context.Context, id, paymentID string) (bool, error)
}
