package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nubecart/storefront/internal/api/middleware"
	"github.com/nubecart/storefront/internal/models"
	service "github.com/nubecart/storefront/internal/services"
	"github.com/nubecart/storefront/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

func (h *CheckoutHandler) CreateCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CheckoutRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		checkout, err := h.checkoutService.CreateCheckout(r.Context(), &req)
		if err != nil {
			logger := middleware.LoggerFromContext(r.Context())
			logger.Error("Failed to create checkout", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Raw(w, http.StatusOK, checkout)
	}
}
