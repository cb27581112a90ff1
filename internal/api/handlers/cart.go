package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nubecart/storefront/internal/cart"
	"github.com/nubecart/storefront/internal/config"
	apperrors "github.com/nubecart/storefront/internal/errors"
	"github.com/nubecart/storefront/internal/models"
	"github.com/nubecart/storefront/internal/utils/response"
)

type CartHandler struct {
	carts     *cart.Manager
	cfg       *config.CartConfig
	validator *validator.Validate
}

func NewCartHandler(carts *cart.Manager, cfg *config.CartConfig) *CartHandler {
	return &CartHandler{
		carts:     carts,
		cfg:       cfg,
		validator: validator.New(),
	}
}

// session returns the cart session id from the cookie, minting one (and
// setting the cookie) for first-time visitors.
func (h *CartHandler) session(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(h.cfg.SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID
}

func (h *CartHandler) store(w http.ResponseWriter, r *http.Request) *cart.Store {
	return h.carts.Store(r.Context(), h.session(w, r))
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.store(w, r).Snapshot())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddCartItemRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		snapshot := h.store(w, r).AddItem(r.Context(), &req.Product, req.Quantity)

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("invalid cart item id"))

			return
		}

		var req models.UpdateCartItemRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		snapshot := h.store(w, r).UpdateQuantity(r.Context(), id, req.Quantity)

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("invalid cart item id"))

			return
		}

		snapshot := h.store(w, r).RemoveItem(r.Context(), id)

		response.Success(w, http.StatusOK, snapshot)
	}
}

func (h *CartHandler) SetOpen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.SetCartOpenRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		snapshot := h.store(w, r).SetOpen(r.Context(), req.Open)

		response.Success(w, http.StatusOK, snapshot)
	}
}
