package domain

// AnnotatedProduct is a ranked recommendation: the candidate's own attributes
// plus its scores rounded to two decimals.
type AnnotatedProduct struct {
	ID        string   `json:"id"`
	Category  string   `json:"category"`
	Brand     string   `json:"brand"`
	Price     float64  `json:"price"`
	Tags      []string `json:"tags"`
	Score     float64  `json:"_score"`
	Base      float64  `json:"_base"`
	UserBoost float64  `json:"_userBoost"`
}

// RecommendationResult is the body of a recommendation response.
type RecommendationResult struct {
	ProductID       string             `json:"productId"`
	Recommendations []AnnotatedProduct `json:"recommendations"`
}
