package models

type CheckoutItem struct {
	ID       int64 `json:"id"       validate:"required"`
	Quantity int   `json:"quantity" validate:"required,min=1"`
	Price    Price `json:"price"`
}

type CheckoutRequest struct {
	Items []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// OrderProduct is one line of the upstream order-creation payload, keyed by
// variant id.
type OrderProduct struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int   `json:"quantity"`
	Price     Price `json:"price"`
}

type OrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Number    string `json:"number"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
}

// OrderRequest is the payload POSTed to the upstream orders endpoint. The
// storefront has no account system, so customer and address data are fixed
// placeholders and payment goes through the offline gateway.
type OrderRequest struct {
	Gateway              string         `json:"gateway"`
	PaymentStatus        string         `json:"payment_status"`
	Status               string         `json:"status"`
	ShippingPickupType   string         `json:"shipping_pickup_type"`
	Shipping             string         `json:"shipping"`
	ShippingOption       string         `json:"shipping_option"`
	ShippingCostCustomer string         `json:"shipping_cost_customer"`
	Products             []OrderProduct `json:"products"`
	Customer             OrderCustomer  `json:"customer"`
	BillingAddress       OrderAddress   `json:"billing_address"`
	ShippingAddress      OrderAddress   `json:"shipping_address"`
}

// Order is the subset of the upstream order-creation response needed to
// build the hosted checkout URL.
type Order struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}
