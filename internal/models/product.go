package models

// Значения-заглушки, которые подставляются, если данные со страницы извлечь не удалось.
const (
	UnknownProductTitle = "Unknown Product"
	FailedProductTitle  = "Product Title" // заглушка для URL, который не удалось загрузить в пакетном режиме
	PlaceholderImage    = "placeholder.jpg"
	PriceNotAvailable   = "N/A"
)

// ProductInfo describes a single product page. Title, Image and Price are
// never empty: missing values are replaced with the sentinels above.
type ProductInfo struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Image string `json:"image"`
	Price string `json:"price"`
}

// UnknownProduct returns a ProductInfo made only of sentinels.
func UnknownProduct(url string) ProductInfo {
	return ProductInfo{
		URL:   url,
		Title: UnknownProductTitle,
		Image: PlaceholderImage,
		Price: PriceNotAvailable,
	}
}

// FailedProduct is the placeholder used for a URL that could not be fetched
// while building a template.
func FailedProduct(url string) ProductInfo {
	p := UnknownProduct(url)
	p.Title = FailedProductTitle
	return p
}
