// internal/models/lens.go
package models

import (
	"bytes"
	"encoding/json"
)

// ProductItem is a normalized, ephemeral search result. It mirrors
// WishlistItem minus the insertion timestamp and is never persisted.
type ProductItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl,omitempty"`
	LinkURL   string `json:"linkUrl,omitempty"`
	Source    string `json:"source,omitempty"`
	PriceText string `json:"priceText,omitempty"`
}

// StringOrNumber decodes a JSON scalar that may arrive as either a string
// or a number. Numbers keep their decimal string form; any other JSON
// value is treated as absent (empty string).
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*s = ""
			return nil
		}
		*s = StringOrNumber(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*s = ""
		return nil
	}
	*s = StringOrNumber(n.String())
	return nil
}

func (s StringOrNumber) String() string {
	return string(s)
}

// LensProviderResponse is the subset of the visual-search provider's payload
// the normalizer consumes. Absent categories decode to nil slices.
type LensProviderResponse struct {
	ShoppingResults []LensRecord `json:"shopping_results"`
	VisualMatches   []LensRecord `json:"visual_matches"`
	ImageResults    []LensRecord `json:"image_results"`
	OrganicResults  []LensRecord `json:"organic_results"`
}

// LensRecord is one loosely-typed provider result. Every field is optional;
// the scalars that vary between string and number use StringOrNumber.
type LensRecord struct {
	Position       StringOrNumber `json:"position"`
	Link           string         `json:"link"`
	Thumbnail      string         `json:"thumbnail"`
	Title          string         `json:"title"`
	Name           string         `json:"name"`
	Snippet        string         `json:"snippet"`
	Image          string         `json:"image"`
	ThumbnailURL   string         `json:"thumbnail_url"`
	Original       string         `json:"original"`
	Source         string         `json:"source"`
	RedirectLink   string         `json:"redirect_link"`
	ProductLink    string         `json:"product_link"`
	DisplayedLink  string         `json:"displayed_link"`
	Seller         string         `json:"seller"`
	Domain         string         `json:"domain"`
	Price          StringOrNumber `json:"price"`
	PriceStr       string         `json:"price_str"`
	ExtractedPrice StringOrNumber `json:"extracted_price"`
}
