package domain

// Patch types carry partial updates: only non-nil fields are written, so an
// admin edit never clobbers columns it did not touch.

type ProductPatch struct {
	Name           *string            `json:"name,omitempty"`
	Description    *string            `json:"description,omitempty"`
	Price          *float64           `json:"price,omitempty"`
	CategoryID     *string            `json:"categoryId,omitempty"`
	Image          *string            `json:"image,omitempty"`
	StockQuantity  *int               `json:"stockQuantity,omitempty"`
	Featured       *bool              `json:"featured,omitempty"`
	Colors         *[]string          `json:"colors,omitempty"`
	Specifications *map[string]string `json:"specifications,omitempty"`
	MediaGallery   *[]MediaItem       `json:"mediaGallery,omitempty"`
}

type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CompanyInfoPatch struct {
	Name         *string      `json:"name,omitempty"`
	Slogan       *string      `json:"slogan,omitempty"`
	About        *string      `json:"about,omitempty"`
	Logo         *string      `json:"logo,omitempty"`
	Contact      *ContactInfo `json:"contact,omitempty"`
	ExchangeRate *float64     `json:"exchangeRate,omitempty"`
}

type BannerPatch struct {
	Title        *string `json:"title,omitempty"`
	Subtitle     *string `json:"subtitle,omitempty"`
	Image        *string `json:"image,omitempty"`
	VideoURL     *string `json:"videoUrl,omitempty"`
	MediaType    *string `json:"mediaType,omitempty"`
	CTAText      *string `json:"ctaText,omitempty"`
	CTALink      *string `json:"ctaLink,omitempty"`
	OrderIndex   *int    `json:"orderIndex,omitempty"`
	SliderHeight *string `json:"sliderHeight,omitempty"`
	TextColor    *string `json:"textColor,omitempty"`
}

type ReviewPatch struct {
	CustomerName *string `json:"customerName,omitempty"`
	Rating       *int    `json:"rating,omitempty"`
	Comment      *string `json:"comment,omitempty"`
	Approved     *bool   `json:"approved,omitempty"`
}
