package domain

// PlaceholderImage is served for products and categories without real media.
const PlaceholderImage = "/placeholder.svg"

type MediaItem struct {
	URL  string `json:"url"`
	Type string `json:"type"` // image | video
}

type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	CategoryID     string            `json:"categoryId"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	StockQuantity  int               `json:"stockQuantity"`
	Featured       bool              `json:"featured"`
	Colors         []string          `json:"colors"`
	Specifications map[string]string `json:"specifications"`
	MediaGallery   []MediaItem       `json:"mediaGallery"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Categories have no image column remotely; always the placeholder.
	Image string `json:"image"`
}

type ContactInfo struct {
	Address     string            `json:"address"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	SocialMedia map[string]string `json:"socialMedia"`
}

type CompanyInfo struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Slogan       string      `json:"slogan"`
	About        string      `json:"about"`
	Logo         string      `json:"logo"`
	Contact      ContactInfo `json:"contact"`
	ExchangeRate float64     `json:"exchangeRate"`
}

type Banner struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Image        string `json:"image"`
	VideoURL     string `json:"videoUrl"`
	MediaType    string `json:"mediaType"` // image | video
	CTAText      string `json:"ctaText"`
	CTALink      string `json:"ctaLink"`
	OrderIndex   int    `json:"orderIndex"`
	SliderHeight string `json:"sliderHeight"`
	TextColor    string `json:"textColor"`
}

type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

type Sale struct {
	ID              string     `json:"id"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	CustomerAddress string     `json:"customerAddress"`
	Total           float64    `json:"total"`
	CreatedAt       string     `json:"createdAt"`
	Items           []SaleItem `json:"items"`
}

type StockTransaction struct {
	ID              string `json:"id"`
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	TransactionType string `json:"transactionType"` // in | out
	Notes           string `json:"notes"`
	CreatedAt       string `json:"createdAt"`
}

type Review struct {
	ID           string `json:"id"`
	ProductID    string `json:"productId"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Approved     bool   `json:"approved"`
	CreatedAt    string `json:"createdAt"`
}

// CartItem is a denormalized line kept in local storage, not a remote row.
type CartItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type DashboardStats struct {
	Products   int     `json:"products"`
	Categories int     `json:"categories"`
	Sales      int     `json:"sales"`
	Revenue    float64 `json:"revenue"`
}
