package recommend

import (
	"context"
	"slices"

	"productReco/domain"
)

// memStore serves copies of fixed slices so a test cannot leak mutations
// between loads.
type memStore struct {
	products     []domain.Product
	purchases    []domain.PurchaseRecord
	productsErr  error
	purchasesErr error
	loads        int
}

func (m *memStore) Products(ctx context.Context) ([]domain.Product, error) {
	m.loads++
	if m.productsErr != nil {
		return nil, m.productsErr
	}
	out := make([]domain.Product, len(m.products))
	for i, p := range m.products {
		p.Tags = slices.Clone(p.Tags)
		out[i] = p
	}
	return out, nil
}

func (m *memStore) Purchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	if m.purchasesErr != nil {
		return nil, m.purchasesErr
	}
	out := make([]domain.PurchaseRecord, len(m.purchases))
	for i, r := range m.purchases {
		r.Products = slices.Clone(r.Products)
		out[i] = r
	}
	return out, nil
}

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: "P1", Category: "shoes", Brand: "X", Price: 100, Tags: []string{"run"}},
		{ID: "P2", Category: "shoes", Brand: "X", Price: 105, Tags: []string{"run"}},
		{ID: "P3", Category: "hats", Brand: "Y", Price: 20, Tags: []string{"sun"}},
	}
}

func ids(recs []domain.AnnotatedProduct) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}
