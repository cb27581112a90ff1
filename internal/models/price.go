package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Price is a decimal carried in its upstream textual form. The commerce API
// returns prices as strings but some payloads use bare numbers; both decode
// to the same representation and always marshal back as a string so no
// precision is lost to float conversion.
type Price string

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = ""

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*p = Price(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("price: %w", err)
	}

	*p = Price(n.String())

	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

func (p Price) String() string {
	return string(p)
}
