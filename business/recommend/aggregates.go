package recommend

import "productReco/domain"

type productPair struct {
	a, b string
}

// CoPurchaseMatrix counts, for an ordered pair of distinct product ids, how
// often they were bought together.
type CoPurchaseMatrix map[productPair]int

// Count returns the co-purchase count of (a, b), 0 when they never co-occur.
func (m CoPurchaseMatrix) Count(a, b string) int {
	return m[productPair{a: a, b: b}]
}

// BuildCoPurchase walks every ordered pair of basket positions and counts the
// ones holding different ids. A basket repeating A next to B therefore adds
// one to co[A][B] per occurrence of A.
func BuildCoPurchase(purchases []domain.PurchaseRecord) CoPurchaseMatrix {
	co := make(CoPurchaseMatrix)
	for _, row := range purchases {
		basket := row.Products
		for i := range basket {
			for j := range basket {
				if basket[i] == basket[j] {
					continue
				}
				co[productPair{a: basket[i], b: basket[j]}]++
			}
		}
	}
	return co
}

// UserProfile summarises one user's purchase history.
type UserProfile struct {
	Owned map[string]struct{}
	// Total counts product occurrences, not baskets.
	Total int

	CatPref   map[string]float64
	BrandPref map[string]float64
	TagPref   map[string]float64
}

func newUserProfile() *UserProfile {
	return &UserProfile{
		Owned:     make(map[string]struct{}),
		CatPref:   make(map[string]float64),
		BrandPref: make(map[string]float64),
		TagPref:   make(map[string]float64),
	}
}

func (p *UserProfile) Owns(productID string) bool {
	_, ok := p.Owned[productID]
	return ok
}

func (p *UserProfile) CategoryAffinity(category string) float64 { return p.CatPref[category] }

func (p *UserProfile) BrandAffinity(brand string) float64 { return p.BrandPref[brand] }

func (p *UserProfile) TagAffinity(tag string) float64 { return p.TagPref[tag] }

// BuildUserProfiles derives a profile for every non-empty user id in the
// ledger. Basket entries missing from the catalog are skipped. Raw counters
// are divided by max(1, total).
func BuildUserProfiles(purchases []domain.PurchaseRecord, byID map[string]domain.Product) map[string]*UserProfile {
	profiles := make(map[string]*UserProfile)

	for _, row := range purchases {
		if row.UserID == "" {
			continue
		}
		prof, ok := profiles[row.UserID]
		if !ok {
			prof = newUserProfile()
			profiles[row.UserID] = prof
		}

		for _, pid := range row.Products {
			prod, ok := byID[pid]
			if !ok {
				continue
			}

			prof.Owned[pid] = struct{}{}
			prof.Total++

			prof.CatPref[prod.Category]++
			prof.BrandPref[prod.Brand]++
			for _, t := range prod.Tags {
				prof.TagPref[t]++
			}
		}
	}

	for _, prof := range profiles {
		denom := float64(max(1, prof.Total))
		normalize(prof.CatPref, denom)
		normalize(prof.BrandPref, denom)
		normalize(prof.TagPref, denom)
	}

	return profiles
}

func normalize(counts map[string]float64, denom float64) {
	for k, v := range counts {
		counts[k] = v / denom
	}
}

// Aggregates holds everything derived from one load of the ledger. It is
// built per request and never shared between requests.
type Aggregates struct {
	CoPurchase CoPurchaseMatrix
	Profiles   map[string]*UserProfile
}

func BuildAggregates(ds Dataset) Aggregates {
	return Aggregates{
		CoPurchase: BuildCoPurchase(ds.Purchases),
		Profiles:   BuildUserProfiles(ds.Purchases, ds.ByID),
	}
}

// Profile returns the profile for userID, or nil for an empty or unknown id.
func (a Aggregates) Profile(userID string) *UserProfile {
	if userID == "" {
		return nil
	}
	return a.Profiles[userID]
}
