// Package mapper translates raw remote rows into view models and back.
// Every forward mapper is total: nullable source columns become defined
// defaults (empty string, empty collection, placeholder image), never
// missing fields. Inverse mappers emit only the columns present in the
// patch, supporting partial updates.
package mapper

import "alwanstore/internal/domain"

func MapDbProductToProduct(row domain.DbProduct) domain.Product {
	p := domain.Product{
		ID:             row.ID,
		Name:           row.Name,
		Price:          row.Price,
		Image:          domain.PlaceholderImage,
		Colors:         []string{},
		Specifications: map[string]string{},
		MediaGallery:   []domain.MediaItem{},
	}
	if row.Description != nil {
		p.Description = *row.Description
	}
	if row.CategoryID != nil {
		p.CategoryID = *row.CategoryID
	}
	if row.Image != nil && *row.Image != "" {
		p.Image = *row.Image
	}
	p.Images = []string{p.Image}
	if row.StockQuantity != nil {
		p.StockQuantity = *row.StockQuantity
	}
	if row.Featured != nil {
		p.Featured = *row.Featured
	}
	if row.Colors != nil {
		p.Colors = row.Colors
	}
	if row.Specifications != nil {
		p.Specifications = row.Specifications
	}
	for _, m := range row.MediaGallery {
		t := m.Type
		if t != "video" {
			t = "image"
		}
		p.MediaGallery = append(p.MediaGallery, domain.MediaItem{URL: m.URL, Type: t})
	}
	return p
}

// MapProductPatchToRow flattens a patch into the columns to write.
func MapProductPatchToRow(p domain.ProductPatch) map[string]any {
	row := map[string]any{}
	if p.Name != nil {
		row["name"] = *p.Name
	}
	if p.Description != nil {
		row["description"] = *p.Description
	}
	if p.Price != nil {
		row["price"] = *p.Price
	}
	if p.CategoryID != nil {
		row["category_id"] = *p.CategoryID
	}
	if p.Image != nil {
		row["image"] = *p.Image
	}
	if p.StockQuantity != nil {
		row["stock_quantity"] = *p.StockQuantity
	}
	if p.Featured != nil {
		row["featured"] = *p.Featured
	}
	if p.Colors != nil {
		row["colors"] = *p.Colors
	}
	if p.Specifications != nil {
		row["specifications"] = *p.Specifications
	}
	if p.MediaGallery != nil {
		items := make([]domain.DbMediaItem, 0, len(*p.MediaGallery))
		for _, m := range *p.MediaGallery {
			items = append(items, domain.DbMediaItem{URL: m.URL, Type: m.Type})
		}
		row["media_gallery"] = items
	}
	return row
}
