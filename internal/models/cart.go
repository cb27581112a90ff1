package models

// CartItem is one cart line. ID is the variant id when the product has
// variants, else the product id; it is the line key and unique within a
// cart.
type CartItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
}

// CartSnapshot is the cart state handed to subscribers and API consumers.
type CartSnapshot struct {
	Items []CartItem `json:"items"`
	Open  bool       `json:"open"`
	Count int        `json:"count"`
}

type AddCartItemRequest struct {
	Product  Product `json:"product"  validate:"required"`
	Quantity int     `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type SetCartOpenRequest struct {
	Open bool `json:"open"`
}
