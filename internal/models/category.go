package models

// Category is an upstream category record. ProductsCount is a pointer so
// the aggregator's fallback path can leave whatever the platform sent (or
// didn't send) untouched.
type Category struct {
	ID            int64        `json:"id"`
	Name          LocaleString `json:"name"`
	Description   LocaleString `json:"description,omitzero"`
	Parent        *int64       `json:"parent,omitempty"`
	ProductsCount *int64       `json:"products_count,omitempty"`
}
