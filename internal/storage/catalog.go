package storage

// CoverageSpec is the catalog coverage text for a product, e.g. "140-160".
type CoverageSpec struct {
	ProductName       string `json:"product_name"`
	CoverageRangeText string `json:"coverage_range_text"`
}

// PackPrice is one purchasable SKU of a product as priced by the dealer.
type PackPrice struct {
	ProductName string  `json:"product_name"`
	SizeLabel   string  `json:"size_label"`
	Price       float64 `json:"price"`
}

type CustomCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CustomProduct struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
}
