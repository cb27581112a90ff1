package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
	"github.com/nubecart/storefront/internal/api/middleware"
	"github.com/nubecart/storefront/internal/models"
	"github.com/nubecart/storefront/internal/upstream"
)

// countingPerPage is the page size of the secondary product fetch used only
// for per-category counting.
const countingPerPage = 200

type CatalogService interface {
	ListCategories(ctx context.Context, page, perPage int) ([]models.Category, error)
	ListProducts(ctx context.Context, page, perPage int, categoryID string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	GetStore(ctx context.Context) (*models.Store, error)
}

type catalogService struct {
	api       upstream.API
	sanitizer *bluemonday.Policy
}

func NewCatalogService(api upstream.API) CatalogService {
	return &catalogService{
		api: api,
		// product and store descriptions arrive as merchant-authored HTML
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// ListCategories fetches categories and recomputes products_count by
// cross-referencing the product collection, since the upstream count is not
// reliable. When the secondary product fetch fails the categories are
// returned with whatever count the platform sent.
func (s *catalogService) ListCategories(ctx context.Context, page, perPage int) ([]models.Category, error) {

	categories, err := s.api.ListCategories(ctx, page, perPage)
	if err != nil {
		return nil, err
	}

	products, err := s.api.ListProducts(ctx, 1, countingPerPage)
	if err != nil {
		logger := middleware.LoggerFromContext(ctx)
		logger.Warn("Product fetch for category counting failed, keeping upstream counts",
			slog.String("error", err.Error()))

		return categories, nil
	}

	for i := range categories {
		count := int64(0)

		for j := range products {
			if products[j].MatchesCategory(categories[i].ID) {
				count++
			}
		}

		categories[i].ProductsCount = &count
	}

	return categories, nil
}

// ListProducts normalizes every product's category linkage into the
// canonical list form and optionally filters by category. A non-numeric or
// empty categoryID disables filtering.
func (s *catalogService) ListProducts(ctx context.Context, page, perPage int, categoryID string) ([]models.Product, error) {

	products, err := s.api.ListProducts(ctx, page, perPage)
	if err != nil {
		return nil, err
	}

	for i := range products {
		products[i].Normalize()
		products[i].Description = s.sanitizeLocale(products[i].Description)
	}

	wantedID, err := strconv.ParseInt(categoryID, 10, 64)
	if err != nil {
		return products, nil
	}

	filtered := make([]models.Product, 0, len(products))

	for _, p := range products {
		if p.MatchesCategory(wantedID) {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Normalize()
	product.Description = s.sanitizeLocale(product.Description)

	return product, nil
}

func (s *catalogService) GetStore(ctx context.Context) (*models.Store, error) {

	store, err := s.api.GetStore(ctx)
	if err != nil {
		return nil, err
	}

	store.Description = s.sanitizeLocale(store.Description)

	return store, nil
}

func (s *catalogService) sanitizeLocale(ls models.LocaleString) models.LocaleString {
	if ls.IsZero() {
		return ls
	}

	return ls.Map(s.sanitizer.Sanitize)
}
