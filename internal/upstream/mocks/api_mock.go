package mocks

import (
	"context"

	"github.com/nubecart/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type API struct {
	mock.Mock
}

func (m *API) ListCategories(ctx context.Context, page, perPage int) ([]models.Category, error) {
	args := m.Called(ctx, page, perPage)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *API) ListProducts(ctx context.Context, page, perPage int) ([]models.Product, error) {
	args := m.Called(ctx, page, perPage)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *API) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *API) GetStore(ctx context.Context) (*models.Store, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *API) CreateOrder(ctx context.Context, order *models.OrderRequest) (*models.Order, error) {
	args := m.Called(ctx, order)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}
