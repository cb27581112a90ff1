// Package upstream implements the client for the commerce platform REST
// API. Every storefront route is ultimately one call through this client.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nubecart/storefront/internal/api/middleware"
	"github.com/nubecart/storefront/internal/config"
	"github.com/nubecart/storefront/internal/errors"
	"github.com/nubecart/storefront/internal/metrics"
	"github.com/nubecart/storefront/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type API interface {
	ListCategories(ctx context.Context, page, perPage int) ([]models.Category, error)
	ListProducts(ctx context.Context, page, perPage int) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	GetStore(ctx context.Context) (*models.Store, error)
	CreateOrder(ctx context.Context, order *models.OrderRequest) (*models.Order, error)
}

type Client struct {
	cfg        *config.Upstream
	httpClient *http.Client
}

// NewClient builds the commerce API client. The request timeout comes from
// config; the platform offers no server-side cancellation, so an unbounded
// client would hang the storefront on a stuck upstream.
func NewClient(cfg *config.Upstream) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

var _ API = (*Client)(nil)

// checkConfig runs before every request so missing credentials surface as a
// configuration error without touching the network.
func (c *Client) checkConfig() error {
	if c.cfg.AccessToken == "" {
		return errors.ConfigError("TIENDANUBE_ACCESS_TOKEN is required")
	}

	if c.cfg.StoreID == "" {
		return errors.ConfigError("TIENDANUBE_STORE_ID is required")
	}

	return nil
}

func (c *Client) endpoint(resource string) string {
	return fmt.Sprintf("%s/%s/%s", c.cfg.BaseURL, c.cfg.StoreID, resource)
}

func (c *Client) do(ctx context.Context, method, resource string, query url.Values, body any) ([]byte, error) {

	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	logger := middleware.LoggerFromContext(ctx)

	apiURL := c.endpoint(resource)
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	var reqBody io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.InternalError("failed to encode request payload").WithError(err)
		}

		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return nil, errors.InternalError("failed to build upstream request").WithError(err)
	}

	req.Header.Set("Authentication", "bearer "+c.cfg.AccessToken)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(resource, 0, time.Since(start))
		logger.Error("Commerce API request failed", slog.String("resource", resource), slog.String("error", err.Error()))

		return nil, errors.InternalError("failed to reach commerce API").WithError(err)
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream(resource, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.InternalError("failed to read commerce API response").WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("Commerce API error",
			slog.String("resource", resource),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)),
		)

		message := fmt.Sprintf("commerce API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))

		if resp.StatusCode == http.StatusUnauthorized {
			return nil, errors.UpstreamUnauthorizedError(message).WithDetail(string(data))
		}

		return nil, errors.UpstreamError(resp.StatusCode, message).WithDetail(string(data))
	}

	return data, nil
}

func (c *Client) get(ctx context.Context, resource string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, resource, query, nil)
}

// unwrapCollection tolerates both body shapes the platform is known to
// return: a bare JSON array, or an object nesting the array under a
// resource key or "results".
func unwrapCollection(data []byte, keys ...string) (json.RawMessage, error) {

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected collection payload: %w", err)
	}

	for _, key := range append(keys, "results") {
		if raw, ok := envelope[key]; ok {
			inner := bytes.TrimSpace(raw)
			if len(inner) > 0 && inner[0] == '[' {
				return inner, nil
			}
		}
	}

	return json.RawMessage("[]"), nil
}

func pagingQuery(page, perPage int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	return query
}

func (c *Client) ListCategories(ctx context.Context, page, perPage int) ([]models.Category, error) {

	data, err := c.get(ctx, "categories", pagingQuery(page, perPage))
	if err != nil {
		return nil, err
	}

	raw, err := unwrapCollection(data, "categories")
	if err != nil {
		return nil, errors.InternalError("failed to decode categories response").WithError(err)
	}

	var categories []models.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, errors.InternalError("failed to decode categories response").WithError(err)
	}

	return categories, nil
}

func (c *Client) ListProducts(ctx context.Context, page, perPage int) ([]models.Product, error) {

	data, err := c.get(ctx, "products", pagingQuery(page, perPage))
	if err != nil {
		return nil, err
	}

	raw, err := unwrapCollection(data, "products")
	if err != nil {
		return nil, errors.InternalError("failed to decode products response").WithError(err)
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, errors.InternalError("failed to decode products response").WithError(err)
	}

	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	data, err := c.get(ctx, fmt.Sprintf("products/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, errors.InternalError("failed to decode product response").WithError(err)
	}

	return &product, nil
}

func (c *Client) GetStore(ctx context.Context) (*models.Store, error) {

	data, err := c.get(ctx, "store", nil)
	if err != nil {
		return nil, err
	}

	var store models.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, errors.InternalError("failed to decode store response").WithError(err)
	}

	return &store, nil
}

func (c *Client) CreateOrder(ctx context.Context, order *models.OrderRequest) (*models.Order, error) {

	data, err := c.do(ctx, http.MethodPost, "orders", nil, order)
	if err != nil {
		return nil, err
	}

	var created models.Order
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, errors.InternalError("failed to decode order response").WithError(err)
	}

	return &created, nil
}
