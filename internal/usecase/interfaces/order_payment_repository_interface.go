package interfaces

import (
	"context"

	"ordem_servico/internal/domain/entities"
)

// IOrderPaymentRepository abstracts DynamoDB persistence for OrderPayment.

type IOrderPaymentRepository interface {
	Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error)
	GetByID(ctx context.Context, id string) (entities.OrderPayment, error)
	ListByOrderNumber(ctx context.Context, orderNumber string) ([]entities.OrderPayment, error)
}
