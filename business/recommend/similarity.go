package recommend

import (
	"math"

	"productReco/domain"
)

const (
	weightCategory   = 3.0
	weightBrand      = 1.0
	weightCoPurchase = 0.5
	weightPrice      = 0.5
	weightTags       = 1.5
)

// PriceSimilarity is 1 - |a.Price - b.Price| / (a.Price + 1), clamped to
// [0, 1]. Only the reference price a is in the denominator, so the measure is
// not symmetric.
func PriceSimilarity(a, b domain.Product) float64 {
	diff := math.Abs(a.Price - b.Price)
	sim := 1 - diff/(a.Price+1)
	return min(max(sim, 0), 1)
}

// TagOverlap is the Jaccard index of two tag sets; 0 when both are empty.
func TagOverlap(tagsA, tagsB []string) float64 {
	setA := toSet(tagsA)
	setB := toSet(tagsB)

	common := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			common++
		}
	}

	union := len(setA) + len(setB) - common
	if union == 0 {
		union = 1
	}
	return float64(common) / float64(union)
}

func toSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// BaseScore is the user-independent similarity of candidate p to current.
// It also returns the raw co-purchase count used as the first tie-breaker.
func BaseScore(current, p domain.Product, co CoPurchaseMatrix) (float64, int) {
	score := 0.0

	if p.Category == current.Category {
		score += weightCategory
	}
	if p.Brand == current.Brand {
		score += weightBrand
	}

	coCount := co.Count(current.ID, p.ID)
	score += weightCoPurchase * float64(coCount)

	score += weightPrice * PriceSimilarity(current, p)
	score += weightTags * TagOverlap(current.Tags, p.Tags)

	return score, coCount
}
