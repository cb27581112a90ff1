package models_test

import (
	"encoding/json"
	"testing"

	"github.com/nubecart/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCategoryRefsDecode(t *testing.T) {
	t.Run("Objects With Ids", func(t *testing.T) {
		var p models.Product

		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","categories":[{"id":5},{"id":7}]}`), &p))
		assert.Equal(t, []int64{5, 7}, p.CategoryIDs())
	})

	t.Run("Primitive Ids", func(t *testing.T) {
		var p models.Product

		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","categories":[5,7]}`), &p))
		assert.Equal(t, []int64{5, 7}, p.CategoryIDs())
	})

	t.Run("Mixed Shapes", func(t *testing.T) {
		var p models.Product

		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","categories":[{"id":5},7]}`), &p))
		assert.Equal(t, []int64{5, 7}, p.CategoryIDs())
	})
}

func TestCategoryIDsPrecedence(t *testing.T) {
	t.Run("List Form Wins Over Singular", func(t *testing.T) {
		var p models.Product

		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","categories":[{"id":5}],"category_id":9}`), &p))
		assert.Equal(t, []int64{5}, p.CategoryIDs())
	})

	t.Run("Empty List Still Wins", func(t *testing.T) {
		var p models.Product

		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","categories":[],"category_id":9}`), &p))
		assert.Equal(t, []int64{}, p.CategoryIDs())
	})

	t.Run("Singular Category Id", func(t *testing.T) {
		p := models.Product{ID: 1, CategoryID: int64Ptr(9)}

		assert.Equal(t, []int64{9}, p.CategoryIDs())
	})

	t.Run("Category Object", func(t *testing.T) {
		var p models.Product

		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","category":{"id":3}}`), &p))
		assert.Equal(t, []int64{3}, p.CategoryIDs())
	})

	t.Run("No Linkage", func(t *testing.T) {
		p := models.Product{ID: 1}

		assert.Equal(t, []int64{}, p.CategoryIDs())
	})
}

func TestMatchesCategory(t *testing.T) {
	t.Run("Singular Shape", func(t *testing.T) {
		p := models.Product{ID: 1, CategoryID: int64Ptr(5)}

		assert.True(t, p.MatchesCategory(5))
		assert.False(t, p.MatchesCategory(6))
	})

	t.Run("List Shape", func(t *testing.T) {
		p := models.Product{ID: 1, Categories: models.CategoryRefs{{ID: 5}, {ID: 7}}}

		assert.True(t, p.MatchesCategory(7))
		assert.False(t, p.MatchesCategory(9))
	})

	t.Run("Category Object Shape", func(t *testing.T) {
		p := models.Product{ID: 1, Category: &models.CategoryRef{ID: 3}}

		assert.True(t, p.MatchesCategory(3))
		assert.False(t, p.MatchesCategory(5))
	})

	t.Run("Redundant Shapes Match Once", func(t *testing.T) {
		p := models.Product{ID: 1, CategoryID: int64Ptr(5), Categories: models.CategoryRefs{{ID: 5}}}

		assert.True(t, p.MatchesCategory(5))
	})
}

func TestNormalize(t *testing.T) {
	var p models.Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","category_id":9}`), &p))

	p.Normalize()

	assert.Equal(t, models.CategoryRefs{{ID: 9}}, p.Categories)
	assert.Nil(t, p.CategoryID)
	assert.Nil(t, p.Category)

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"categories":[9]`)
	assert.NotContains(t, string(out), "category_id")
}

func TestLineItemResolution(t *testing.T) {
	t.Run("Variant Zero Is Canonical", func(t *testing.T) {
		p := models.Product{
			ID:    1,
			Price: "10.00",
			Variants: []models.Variant{
				{ID: 10, Price: "5.00"},
				{ID: 11, Price: "6.00"},
			},
			Images: []models.Image{{Src: "https://cdn.example.com/a.jpg"}},
		}

		assert.Equal(t, int64(10), p.LineItemID())
		assert.Equal(t, models.Price("5.00"), p.CanonicalPrice())
		assert.Equal(t, "https://cdn.example.com/a.jpg", p.FirstImage())
	})

	t.Run("Product Fields As Fallback", func(t *testing.T) {
		p := models.Product{ID: 1, Price: "10.00"}

		assert.Equal(t, int64(1), p.LineItemID())
		assert.Equal(t, models.Price("10.00"), p.CanonicalPrice())
		assert.Equal(t, "", p.FirstImage())
	})
}
