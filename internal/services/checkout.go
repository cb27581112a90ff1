package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nubecart/storefront/internal/api/middleware"
	"github.com/nubecart/storefront/internal/config"
	"github.com/nubecart/storefront/internal/errors"
	"github.com/nubecart/storefront/internal/models"
	"github.com/nubecart/storefront/internal/upstream"
)

type CheckoutService interface {
	CreateCheckout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type checkoutService struct {
	api upstream.API
	cfg *config.Upstream
}

func NewCheckoutService(api upstream.API, cfg *config.Upstream) CheckoutService {
	return &checkoutService{api: api, cfg: cfg}
}

// The storefront has no customer accounts; orders carry fixed placeholder
// contact and address data and the checkout completes on the platform's
// hosted flow.
var (
	placeholderCustomer = models.OrderCustomer{
		Name:  "Cliente",
		Email: "cliente@ejemplo.com",
		Phone: "+54 11 1234-5678",
	}

	placeholderAddress = models.OrderAddress{
		FirstName: "Cliente",
		LastName:  "Apellido",
		Address:   "Dirección",
		Number:    "123",
		City:      "Ciudad",
		Province:  "Provincia",
		Zipcode:   "1234",
		Country:   "AR",
	}
)

// CreateCheckout creates an upstream order for the cart lines and returns
// the hosted checkout URL. An empty item list is rejected before any
// upstream call.
func (s *checkoutService) CreateCheckout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {

	if len(req.Items) == 0 {
		return nil, errors.ValidationError("checkout requires at least one item")
	}

	products := make([]models.OrderProduct, 0, len(req.Items))
	for _, item := range req.Items {
		products = append(products, models.OrderProduct{
			VariantID: item.ID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := &models.OrderRequest{
		Gateway:              "offline",
		PaymentStatus:        "pending",
		Status:               "open",
		ShippingPickupType:   "ship",
		Shipping:             "not-provided",
		ShippingOption:       "Envío estándar",
		ShippingCostCustomer: "0.00",
		Products:             products,
		Customer:             placeholderCustomer,
		BillingAddress:       placeholderAddress,
		ShippingAddress:      placeholderAddress,
	}

	created, err := s.api.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	logger := middleware.LoggerFromContext(ctx)
	logger.Info("Order created",
		slog.Int64("order_id", created.ID),
		slog.Int("items", len(req.Items)),
	)

	return &models.CheckoutResponse{
		CheckoutURL: fmt.Sprintf(s.cfg.CheckoutURL, s.cfg.StoreID, created.ID, created.Token),
	}, nil
}
