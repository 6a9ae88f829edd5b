package usecase

import (
	"context"
	"sync"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/domain/form"
	"ordem_servico/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IClientUseCase serves the client name autocomplete.
//
// The client list is fetched once per shop and searched in memory.

type IClientUseCase interface {
	List(ctx context.Context, s entities.Session) ([]entities.Client, error)
	Search(ctx context.Context, s entities.Session, query string) ([]entities.Client, error)
}

type ClientUseCase struct {
	gateway interfaces.IServiceOrderGateway

	mu      sync.Mutex
	clients map[string][]entities.Client
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(gateway interfaces.IServiceOrderGateway) *ClientUseCase {
	return &ClientUseCase{gateway: gateway, clients: make(map[string][]entities.Client)}
}

func (u *ClientUseCase) List(ctx context.Context, s entities.Session) ([]entities.Client, error) {
	if !s.Valid() {
		return nil, ErrMissingToken
	}

	u.mu.Lock()
	cached, ok := u.clients[s.Token]
	u.mu.Unlock()
	if ok {
		return cached, nil
	}

	clients, err := u.gateway.ListClients(ctx, s.Token)
	if err != nil {
		zap.L().Error("[client][usecase] list clients failed", zap.Error(err))
		return nil, err
	}
	if clients == nil {
		clients = []entities.Client{}
	}

	u.mu.Lock()
	u.clients[s.Token] = clients
	u.mu.Unlock()
	zap.L().Info("[client][usecase] clients loaded", zap.Int("count", len(clients)))
	return clients, nil
}

func (u *ClientUseCase) Search(ctx context.Context, s entities.Session, query string) ([]entities.Client, error) {
	clients, err := u.List(ctx, s)
	if err != nil {
		return nil, err
	}
	found := form.SearchClients(clients, query)
	if found == nil {
		found = []entities.Client{}
	}
	return found, nil
}
