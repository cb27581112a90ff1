package models

// Store is the storefront metadata record from the commerce API.
type Store struct {
	ID           int64        `json:"id"`
	Name         LocaleString `json:"name"`
	Description  LocaleString `json:"description,omitzero"`
	Email        string       `json:"email,omitempty"`
	URL          string       `json:"url_with_protocol,omitempty"`
	Logo         string       `json:"logo,omitempty"`
	Country      string       `json:"country,omitempty"`
	MainCurrency string       `json:"main_currency,omitempty"`
}
