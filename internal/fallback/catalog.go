// Package fallback bundles a static sample catalog. It is served only when a
// live read fails with the recognized row-level-security misconfiguration,
// so the storefront stays browsable (read-only) instead of going blank.
package fallback

import "alwanstore/internal/domain"

var categories = []domain.Category{
	{ID: "cat-interior", Name: "دهانات داخلية", Description: "Interior wall paints", Image: domain.PlaceholderImage},
	{ID: "cat-exterior", Name: "دهانات خارجية", Description: "Exterior weather-resistant paints", Image: domain.PlaceholderImage},
	{ID: "cat-tools", Name: "أدوات الدهان", Description: "Brushes, rollers and trays", Image: domain.PlaceholderImage},
}

var products = []domain.Product{
	{
		ID:            "smp-velvet-white",
		Name:          "دهان مخملي أبيض",
		Description:   "Velvet-matt interior emulsion, washable, low odor.",
		Price:         24.5,
		CategoryID:    "cat-interior",
		Image:         domain.PlaceholderImage,
		Images:        []string{domain.PlaceholderImage},
		StockQuantity: 40,
		Featured:      true,
		Colors:        []string{"#FFFFFF", "#F5F0E6", "#EFE9DC"},
		Specifications: map[string]string{
			"coverage": "10 m²/L",
			"finish":   "matt",
			"size":     "4 L",
		},
		MediaGallery: []domain.MediaItem{},
	},
	{
		ID:            "smp-silk-blue",
		Name:          "دهان حريري أزرق",
		Description:   "Silk-finish interior paint with high scrub resistance.",
		Price:         28,
		CategoryID:    "cat-interior",
		Image:         domain.PlaceholderImage,
		Images:        []string{domain.PlaceholderImage},
		StockQuantity: 25,
		Featured:      false,
		Colors:        []string{"#2B6CB0", "#4299E1"},
		Specifications: map[string]string{
			"coverage": "12 m²/L",
			"finish":   "silk",
			"size":     "4 L",
		},
		MediaGallery: []domain.MediaItem{},
	},
	{
		ID:            "smp-facade-grey",
		Name:          "دهان واجهات رمادي",
		Description:   "Exterior acrylic facade paint, UV and rain resistant.",
		Price:         39.75,
		CategoryID:    "cat-exterior",
		Image:         domain.PlaceholderImage,
		Images:        []string{domain.PlaceholderImage},
		StockQuantity: 18,
		Featured:      true,
		Colors:        []string{"#718096", "#A0AEC0"},
		Specifications: map[string]string{
			"coverage": "8 m²/L",
			"finish":   "matt",
			"size":     "10 L",
		},
		MediaGallery: []domain.MediaItem{},
	},
	{
		ID:             "smp-roller-set",
		Name:           "طقم رولات دهان",
		Description:    "Roller set with tray and two sleeve sizes.",
		Price:          7.25,
		CategoryID:     "cat-tools",
		Image:          domain.PlaceholderImage,
		Images:         []string{domain.PlaceholderImage},
		StockQuantity:  60,
		Featured:       false,
		Colors:         []string{},
		Specifications: map[string]string{},
		MediaGallery:   []domain.MediaItem{},
	},
}

// Products returns a copy of the sample product list.
func Products() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// ProductsByCategory returns sample products filtered by category id.
func ProductsByCategory(categoryID string) []domain.Product {
	out := []domain.Product{}
	for _, p := range products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns a copy of the sample category list.
func Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}
