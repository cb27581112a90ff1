package mocks

import (
	"context"

	"github.com/nubecart/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListCategories(ctx context.Context, page, perPage int) ([]models.Category, error) {
	args := m.Called(ctx, page, perPage)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *CatalogService) ListProducts(ctx context.Context, page, perPage int, categoryID string) ([]models.Product, error) {
	args := m.Called(ctx, page, perPage, categoryID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *CatalogService) GetStore(ctx context.Context) (*models.Store, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Store), args.Error(1)
}

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) CreateCheckout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CheckoutResponse), args.Error(1)
}
