// internal/services/lens_normalizer.go
package services

import (
	"encoding/json"

	"github.com/google/uuid"

	"snaplens-backend/internal/models"
)

// maxLensResults caps the normalized output length.
const maxLensResults = 48

// NormalizeLensResults flattens a raw provider payload into an ordered,
// deduplicated, capped product list. Categories are ranked shopping →
// visual → image → organic; input order is preserved within each. A payload
// that is not a JSON object yields an empty list, never an error.
func NormalizeLensResults(raw []byte) []models.ProductItem {
	var resp models.LensProviderResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return []models.ProductItem{}
	}

	items := make([]models.ProductItem, 0,
		len(resp.ShoppingResults)+len(resp.VisualMatches)+len(resp.ImageResults)+len(resp.OrganicResults))

	items = appendNormalized(items, resp.ShoppingResults, "Product")
	items = appendNormalized(items, resp.VisualMatches, "Visual match")
	items = appendNormalized(items, resp.ImageResults, "Similar image")
	items = appendNormalized(items, resp.OrganicResults, "Result")

	return dedupeAndCap(items)
}

func appendNormalized(items []models.ProductItem, records []models.LensRecord, fallbackTitle string) []models.ProductItem {
	for i := range records {
		items = append(items, normalizeRecord(&records[i], fallbackTitle))
	}
	return items
}

// normalizeRecord coalesces each output field from the record's candidate
// fields in priority order, taking the first non-empty value.
func normalizeRecord(rec *models.LensRecord, fallbackTitle string) models.ProductItem {
	id := coalesce(rec.Position.String(), rec.Link, rec.Thumbnail)
	if id == "" {
		// Every item gets an id even when no candidate field is present.
		id = uuid.NewString()
	}

	title := coalesce(rec.Title, rec.Name, rec.Snippet)
	if title == "" {
		title = fallbackTitle
	}

	return models.ProductItem{
		ID:        id,
		Title:     title,
		ImageURL:  coalesce(rec.Thumbnail, rec.Image, rec.ThumbnailURL, rec.Original),
		LinkURL:   coalesce(rec.Link, rec.Source, rec.RedirectLink, rec.ProductLink),
		Source:    coalesce(rec.DisplayedLink, rec.Source, rec.Seller, rec.Domain),
		PriceText: coalesce(rec.Price.String(), rec.PriceStr, rec.ExtractedPrice.String()),
	}
}

// dedupeAndCap keeps the first occurrence per dedup key and truncates to
// maxLensResults. An item with no key never collides with anything and is
// always kept.
func dedupeAndCap(items []models.ProductItem) []models.ProductItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]models.ProductItem, 0, len(items))

	for _, item := range items {
		key := coalesce(item.LinkURL, item.ImageURL, item.ID)
		if key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, item)
		if len(out) == maxLensResults {
			break
		}
	}

	return out
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
