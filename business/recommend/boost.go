package recommend

import "productReco/domain"

// Personalisation weights. Fixed; callers cannot tune them.
const (
	boostCategory = 1.2
	boostBrand    = 0.8
	boostTags     = 1.0
	boostNovelty  = 0.5
)

// UserBoost is the additive preference boost of candidate for a user. A nil
// profile yields exactly 0.
func UserBoost(candidate domain.Product, prof *UserProfile) float64 {
	if prof == nil {
		return 0
	}

	boost := boostCategory*prof.CategoryAffinity(candidate.Category) +
		boostBrand*prof.BrandAffinity(candidate.Brand)

	if len(candidate.Tags) > 0 {
		sum := 0.0
		for _, t := range candidate.Tags {
			sum += prof.TagAffinity(t)
		}
		boost += boostTags * (sum / float64(len(candidate.Tags)))
	}

	if !prof.Owns(candidate.ID) {
		boost += boostNovelty
	}

	return boost
}
