package recommend

import (
	"math"
	"sort"

	"productReco/domain"
)

const defaultTopN = 5

// Options controls one recommendation request.
type Options struct {
	TopN int
	// UserID personalises the ranking; empty means anonymous.
	UserID string
	// ExcludeOwned drops candidates the user already bought.
	ExcludeOwned bool
}

func DefaultOptions() Options {
	return Options{
		TopN:         defaultTopN,
		ExcludeOwned: true,
	}
}

type scoredCandidate struct {
	product   domain.Product
	total     float64
	base      float64
	boost     float64
	co        int
	priceDiff float64
}

// Rank scores every eligible candidate against current and returns the best
// topN. Order: total score desc, co-purchase count desc, absolute price
// difference asc. Fully tied candidates keep catalog order.
func Rank(current domain.Product, products []domain.Product, agg Aggregates, prof *UserProfile, opts Options) []domain.AnnotatedProduct {
	if opts.TopN <= 0 {
		return []domain.AnnotatedProduct{}
	}

	scored := make([]scoredCandidate, 0, len(products))
	for _, p := range products {
		if p.ID == current.ID {
			continue
		}
		if opts.ExcludeOwned && prof != nil && prof.Owns(p.ID) {
			continue
		}

		base, co := BaseScore(current, p, agg.CoPurchase)
		boost := UserBoost(p, prof)

		scored = append(scored, scoredCandidate{
			product:   p,
			total:     base + boost,
			base:      base,
			boost:     boost,
			co:        co,
			priceDiff: math.Abs(p.Price - current.Price),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.total != b.total {
			return a.total > b.total
		}
		if a.co != b.co {
			return a.co > b.co
		}
		return a.priceDiff < b.priceDiff
	})

	limit := min(opts.TopN, len(scored))
	out := make([]domain.AnnotatedProduct, 0, limit)
	for _, s := range scored[:limit] {
		out = append(out, annotate(s))
	}

	candidatesScored.Add(float64(len(scored)))

	return out
}

func annotate(s scoredCandidate) domain.AnnotatedProduct {
	return domain.AnnotatedProduct{
		ID:        s.product.ID,
		Category:  s.product.Category,
		Brand:     s.product.Brand,
		Price:     s.product.Price,
		Tags:      s.product.Tags,
		Score:     round2(s.total),
		Base:      round2(s.base),
		UserBoost: round2(s.boost),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
