package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Variant struct {
	ID            int64 `json:"id"`
	Price         Price `json:"price,omitempty"`
	StockQuantity int   `json:"stock_quantity,omitempty"`
}

type Image struct {
	ID  int64  `json:"id,omitempty"`
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// CategoryRef is one element of a product's category list. The commerce API
// sends either an object carrying an id or a bare numeric identifier; both
// collapse to the id here.
type CategoryRef struct {
	ID int64
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			ID int64 `json:"id"`
		}

		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}

		r.ID = obj.ID

		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("category ref: %w", err)
	}

	r.ID = id

	return nil
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// CategoryRefs distinguishes an absent list (nil) from an empty one: an
// empty list is still the list form and wins over the singular shapes.
type CategoryRefs []CategoryRef

// Product is an upstream catalog record. Category linkage arrives in one of
// three shapes; CategoryIDs collapses them into one.
type Product struct {
	ID          int64        `json:"id"`
	Name        LocaleString `json:"name"`
	Description LocaleString `json:"description,omitzero"`
	Handle      LocaleString `json:"handle,omitzero"`
	Price       Price        `json:"price,omitempty"`
	Variants    []Variant    `json:"variants,omitempty"`
	Images      []Image      `json:"images,omitempty"`
	Categories  CategoryRefs `json:"categories"`
	CategoryID  *int64       `json:"category_id,omitempty"`
	Category    *CategoryRef `json:"category,omitempty"`
}

// CategoryIDs normalizes the category linkage. First matching shape wins:
// the list (even when empty), then the singular category_id, then the
// category object, then nothing.
func (p *Product) CategoryIDs() []int64 {
	switch {
	case p.Categories != nil:
		ids := make([]int64, 0, len(p.Categories))
		for _, ref := range p.Categories {
			ids = append(ids, ref.ID)
		}

		return ids
	case p.CategoryID != nil:
		return []int64{*p.CategoryID}
	case p.Category != nil:
		return []int64{p.Category.ID}
	default:
		return []int64{}
	}
}

// MatchesCategory reports whether the product belongs to the category under
// any of the upstream linkage shapes. The shapes can be redundant; a product
// matches once if any of them does.
func (p *Product) MatchesCategory(categoryID int64) bool {
	if p.CategoryID != nil && *p.CategoryID == categoryID {
		return true
	}

	if p.Category != nil && p.Category.ID == categoryID {
		return true
	}

	for _, ref := range p.Categories {
		if ref.ID == categoryID {
			return true
		}
	}

	return false
}

// Normalize replaces the category linkage with its canonical list form and
// drops the redundant singular shapes. Runs once per product per fetch.
func (p *Product) Normalize() {
	ids := p.CategoryIDs()

	refs := make(CategoryRefs, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, CategoryRef{ID: id})
	}

	p.Categories = refs
	p.CategoryID = nil
	p.Category = nil
}

// CanonicalPrice is the variant-0 price when variants exist, else the
// product price.
func (p *Product) CanonicalPrice() Price {
	if len(p.Variants) > 0 && p.Variants[0].Price != "" {
		return p.Variants[0].Price
	}

	return p.Price
}

// LineItemID is the cart line key: the first variant's id when variants
// exist, else the product id.
func (p *Product) LineItemID() int64 {
	if len(p.Variants) > 0 && p.Variants[0].ID != 0 {
		return p.Variants[0].ID
	}

	return p.ID
}

// FirstImage returns the first image URL, or "".
func (p *Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0].Src
	}

	return ""
}
