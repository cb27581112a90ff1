package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nubecart/storefront/internal/api/handlers"
	"github.com/nubecart/storefront/internal/cart"
	"github.com/nubecart/storefront/internal/config"
	"github.com/nubecart/storefront/internal/models"
	"github.com/nubecart/storefront/internal/testutils"
	"github.com/nubecart/storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartHandler() *handlers.CartHandler {
	cfg := &config.CartConfig{SessionCookie: "storefront_session"}
	manager := cart.NewManager(testutils.NewMemCache(), cfg)

	return handlers.NewCartHandler(manager, cfg)
}

func decodeSnapshot(t *testing.T, rr *httptest.ResponseRecorder) models.CartSnapshot {
	t.Helper()

	var envelope struct {
		Success bool                `json:"success"`
		Data    models.CartSnapshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)

	return envelope.Data
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "storefront_session" {
			return cookie
		}
	}

	return nil
}

func TestGetCartHandler(t *testing.T) {

	t.Run("First Visit Mints Session Cookie", func(t *testing.T) {
		// Arrange
		handler := newCartHandler()

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/cart", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetCart().ServeHTTP(rr, req)

		// Assert
		require.Equal(t, http.StatusOK, rr.Code)

		cookie := sessionCookie(rr)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)

		snapshot := decodeSnapshot(t, rr)
		assert.Empty(t, snapshot.Items)
		assert.False(t, snapshot.Open)
		assert.Zero(t, snapshot.Count)
	})

	t.Run("Existing Cookie Is Reused", func(t *testing.T) {
		handler := newCartHandler()

		req := testutils.CreateTestRequest(http.MethodGet, "/api/v1/cart", nil, nil)
		req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "sid-1"})
		rr := httptest.NewRecorder()

		handler.GetCart().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, sessionCookie(rr))
	})
}

func TestAddItemHandler(t *testing.T) {

	t.Run("Adds Item And Opens Panel", func(t *testing.T) {
		// Arrange
		handler := newCartHandler()

		body := `{"product":{"id":7,"name":{"es":"Mate"},"price":"1500.00"},"quantity":2}`
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body), nil)
		req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "sid-1"})
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		require.Equal(t, http.StatusOK, rr.Code)

		snapshot := decodeSnapshot(t, rr)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, int64(7), snapshot.Items[0].ID)
		assert.Equal(t, "Mate", snapshot.Items[0].Name)
		assert.Equal(t, 2, snapshot.Items[0].Quantity)
		assert.True(t, snapshot.Open)
		assert.Equal(t, 2, snapshot.Count)
	})

	t.Run("Empty Body Is Bad Request", func(t *testing.T) {
		handler := newCartHandler()

		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/cart/items", nil, nil)
		rr := httptest.NewRecorder()

		handler.AddItem().ServeHTTP(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var envelope response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
	})

	t.Run("Malformed JSON Is Bad Request", func(t *testing.T) {
		handler := newCartHandler()

		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{nope`), nil)
		rr := httptest.NewRecorder()

		handler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Sessions Are Isolated", func(t *testing.T) {
		handler := newCartHandler()

		body := `{"product":{"id":7,"name":{"es":"Mate"}},"quantity":1}`
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body), nil)
		req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "sid-a"})
		rr := httptest.NewRecorder()
		handler.AddItem().ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		other := testutils.CreateTestRequest(http.MethodGet, "/api/v1/cart", nil, nil)
		other.AddCookie(&http.Cookie{Name: "storefront_session", Value: "sid-b"})
		otherRR := httptest.NewRecorder()
		handler.GetCart().ServeHTTP(otherRR, other)

		snapshot := decodeSnapshot(t, otherRR)
		assert.Empty(t, snapshot.Items)
	})
}

func TestUpdateQuantityHandler(t *testing.T) {

	addItem := func(t *testing.T, handler *handlers.CartHandler, sid string) {
		t.Helper()

		body := `{"product":{"id":7,"name":{"es":"Mate"},"price":"1500.00"},"quantity":1}`
		req := testutils.CreateTestRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body), nil)
		req.AddCookie(&http.Cookie{Name: "storefront_session", Value: sid})
		rr := httptest.NewRecorder()
		handler.AddItem().ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	t.Run("Replaces Quantity", func(t *testing.T) {
		handler := newCartHandler()
		addItem(t, handler, "sid-1")

		req := testutils.CreateTestRequest(http.MethodPut, "/api/v1/cart/items/7",
			strings.NewReader(`{"quantity":5}`), map[string]string{"id": "7"})
		req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "sid-1"})
		rr := httptest.NewRecorder()

		handler.UpdateQuantity().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		snapshot := decodeSnapshot(t, rr)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, 5, snapshot.Items[0].Quantity)
	})

	t.Run("Zero Quantity Removes Line", func(t *testing.T) {
		handler := newCartHandler()
		addItem(t, handler, "sid-1")

		req := testutils.CreateTestRequest(http.MethodPut, "/api/v1/cart/items/7",
			strings.NewReader(`{"quantity":0}`), map[string]string{"id": "7"})
		req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "sid-1"})
		rr := httptest.NewRecorder()

		handler.UpdateQuantity().ServeHTTP(rr, req)

		snapshot := decodeSnapshot(t, rr)
		assert.Empty(t, snapshot.Items)
	})

	t.Run("Invalid ID Is Bad Request", func(t *testing.T) {
		handler := newCartHandler()

		req := testutils.CreateTestRequest(http.MethodPut, "/api/v1/cart/items/abc",
			strings.NewReader(`{"quantity":2}`), map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		handler.UpdateQuantity().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRemoveItemHandler(t *testing.T) {
	handler := newCartHandler()

	body := `{"product":{"id":7,"name":{"es":"Mate"}},"quantity":1}`
	addReq := testutils.CreateTestRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body), nil)
	addReq.AddCookie(&http.Cookie{Name: "storefront_session", Value: "sid-1"})
	handler.AddItem().ServeHTTP(httptest.NewRecorder(), addReq)

	req := testutils.CreateTestRequest(http.MethodDelete, "/api/v1/cart/items/7", nil, map[string]string{"id": "7"})
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "sid-1"})
	rr := httptest.NewRecorder()

	handler.RemoveItem().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	snapshot := decodeSnapshot(t, rr)
	assert.Empty(t, snapshot.Items)
}

func TestSetOpenHandler(t *testing.T) {
	handler := newCartHandler()

	req := testutils.CreateTestRequest(http.MethodPut, "/api/v1/cart/open",
		strings.NewReader(`{"open":true}`), nil)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "sid-1"})
	rr := httptest.NewRecorder()

	handler.SetOpen().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	snapshot := decodeSnapshot(t, rr)
	assert.True(t, snapshot.Open)
}
