package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nubecart/storefront/internal/api/middleware"
	apperrors "github.com/nubecart/storefront/internal/errors"
	service "github.com/nubecart/storefront/internal/services"
	"github.com/nubecart/storefront/internal/utils/response"
)

const (
	defaultPage    = 1
	defaultPerPage = 50
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// queryInt parses a positive integer query parameter, falling back to the
// default on absence or garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}

	return value
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page := queryInt(r, "page", defaultPage)
		perPage := queryInt(r, "per_page", defaultPerPage)

		categories, err := h.catalogService.ListCategories(r.Context(), page, perPage)
		if err != nil {
			logger := middleware.LoggerFromContext(r.Context())
			logger.Error("Failed to fetch categories", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		// proxy routes mirror the upstream body shape
		response.Raw(w, http.StatusOK, categories)
	}
}

func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page := queryInt(r, "page", defaultPage)
		perPage := queryInt(r, "per_page", defaultPerPage)
		categoryID := r.URL.Query().Get("category_id")

		products, err := h.catalogService.ListProducts(r.Context(), page, perPage, categoryID)
		if err != nil {
			logger := middleware.LoggerFromContext(r.Context())
			logger.Error("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Raw(w, http.StatusOK, products)
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("invalid product id"))

			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger := middleware.LoggerFromContext(r.Context())
			logger.Error("Failed to fetch product", slog.Int64("product_id", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Raw(w, http.StatusOK, product)
	}
}

func (h *CatalogHandler) GetStore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		store, err := h.catalogService.GetStore(r.Context())
		if err != nil {
			logger := middleware.LoggerFromContext(r.Context())
			logger.Error("Failed to fetch store metadata", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Raw(w, http.StatusOK, store)
	}
}
