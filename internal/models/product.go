package models

// ProductImage is a single catalog image entry.
type ProductImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// ProductVariant carries the purchasable options of a product. Prices are kept
// as strings because the catalog document stores them that way.
type ProductVariant struct {
	ID    int    `json:"id"`
	Title string `json:"title,omitempty"`
	Price string `json:"price"`
}

// Product is one entry of the static catalog. The catalog is read-only; reviews
// reference products by numeric id and denormalize the title at submission time.
type Product struct {
	ID          int              `json:"id"`
	Handle      string           `json:"handle"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Images      []ProductImage   `json:"images,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
}

// CatalogDocument is the on-disk shape of the product catalog.
type CatalogDocument struct {
	Products []Product `json:"products"`
}

// SeedDocument is the bundled default review dataset used when the store holds
// no persisted collection yet.
type SeedDocument struct {
	Reviews []Review `json:"reviews"`
}
