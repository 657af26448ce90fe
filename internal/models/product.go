package models

type ProductReview struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// Product is a ready-made digital product from the static catalog.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Price       int64           `json:"price"`
	OldPrice    int64           `json:"old_price,omitempty"`
	Rating      float64         `json:"rating"`
	Images      []string        `json:"images"`
	Description string          `json:"description"`
	Sales       int             `json:"sales"`
	Reviews     []ProductReview `json:"reviews"`
}
