package interfaces

import (
	"context"

	"ordem_servico/internal/domain/entities"
)

// IServiceOrderGateway abstracts the remote service order API.
//
// Listing, clients and logo are scoped by the shop token; update and delete are
// addressed by order id and order number respectively, as the API expects.
type IServiceOrderGateway interface {
	ListOrders(ctx context.Context, token string) ([]entities.ServiceOrder, error)
	ListClients(ctx context.Context, token string) ([]entities.Client, error)
	ShopLogo(ctx context.Context, token string) (string, error)
	CreateOrder(ctx context.Context, token string, o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateOrder(ctx context.Context, id string, o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) error
	DeleteOrder(ctx context.Context, number string) error
}
