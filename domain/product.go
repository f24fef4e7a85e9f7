package domain

// Product is one catalog entry. Tags behave as a set; the loader collapses
// duplicates before any scoring happens.
type Product struct {
	ID       string   `json:"id" validate:"required"`
	Category string   `json:"category"`
	Brand    string   `json:"brand"`
	Price    float64  `json:"price" validate:"gte=0"`
	Tags     []string `json:"tags"`
}
