package domain

import "encoding/json"

// Raw row shapes as the remote REST layer returns them: snake_case columns,
// nullable fields as pointers or nil-able collections. Mappers in
// internal/mapper translate between these and the view models above.

type DbMediaItem struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

type DbProduct struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    *string           `json:"description"`
	Price          float64           `json:"price"`
	CategoryID     *string           `json:"category_id"`
	Image          *string           `json:"image"`
	StockQuantity  *int              `json:"stock_quantity"`
	Featured       *bool             `json:"featured"`
	Colors         []string          `json:"colors"`
	Specifications map[string]string `json:"specifications"`
	MediaGallery   []DbMediaItem     `json:"media_gallery"`
	CreatedAt      string            `json:"created_at"`
}

type DbCategory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

type DbCompanyInfo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slogan       *string `json:"slogan"`
	About        *string `json:"about"`
	Logo         *string `json:"logo"`
	// Stored as a single JSON column; may arrive as an object or a
	// JSON-encoded string depending on how it was written. See
	// mapper.ExtractContactInfo.
	Contact      json.RawMessage `json:"contact"`
	ExchangeRate *float64        `json:"exchange_rate"`
}

type DbBanner struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Subtitle     *string `json:"subtitle"`
	Image        *string `json:"image"`
	VideoURL     *string `json:"video_url"`
	MediaType    *string `json:"media_type"`
	CTAText      *string `json:"cta_text"`
	CTALink      *string `json:"cta_link"`
	OrderIndex   *int    `json:"order_index"`
	SliderHeight *string `json:"slider_height"`
	TextColor    *string `json:"text_color"`
}

type DbSale struct {
	ID              string  `json:"id"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   *string `json:"customer_phone"`
	CustomerAddress *string `json:"customer_address"`
	Total           float64 `json:"total"`
	CreatedAt       string  `json:"created_at"`
}

type DbSaleItem struct {
	ID          string  `json:"id,omitempty"`
	SaleID      string  `json:"sale_id"`
	ProductID   string  `json:"product_id"`
	ProductName *string `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type DbStockTransaction struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	Quantity        int     `json:"quantity"`
	TransactionType string  `json:"transaction_type"`
	Notes           *string `json:"notes"`
	CreatedAt       string  `json:"created_at"`
}

type DbReview struct {
	ID           string  `json:"id"`
	ProductID    *string `json:"product_id"`
	CustomerName string  `json:"customer_name"`
	Rating       *int    `json:"rating"`
	Comment      *string `json:"comment"`
	Approved     *bool   `json:"approved"`
	CreatedAt    string  `json:"created_at"`
}
