package recommend

import (
	"context"
	"fmt"
	"slices"

	"productReco/domain"

	"github.com/go-playground/validator/v10"
)

// Store is the read-only backing store for the catalog and the purchase ledger.
type Store interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Purchases(ctx context.Context) ([]domain.PurchaseRecord, error)
}

// Dataset is one request's view of the catalog and ledger.
type Dataset struct {
	Products  []domain.Product
	Purchases []domain.PurchaseRecord
	ByID      map[string]domain.Product
}

// Loader reads and validates a fresh Dataset from a Store on every call.
type Loader struct {
	store    Store
	validate *validator.Validate
}

// NewLoader returns a Loader reading from store.
func NewLoader(store Store) *Loader {
	return &Loader{
		store:    store,
		validate: validator.New(),
	}
}

// Load reads the catalog and ledger, validates every record and indexes the
// catalog by product id. Any read or validation failure wraps
// domain.ErrDataUnavailable; a cancelled or expired ctx is reported as such.
func (l *Loader) Load(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, fmt.Errorf("context error: %w", err)
	}

	products, err := l.store.Products(ctx)
	if err != nil {
		return Dataset{}, l.readError(ctx, "catalog", err)
	}

	if err := ctx.Err(); err != nil {
		return Dataset{}, fmt.Errorf("context error: %w", err)
	}

	purchases, err := l.store.Purchases(ctx)
	if err != nil {
		return Dataset{}, l.readError(ctx, "ledger", err)
	}

	// stores may share their slices between calls
	products = slices.Clone(products)
	for i := range products {
		if err := l.validate.Struct(&products[i]); err != nil {
			return Dataset{}, fmt.Errorf("%w: catalog record %d: %w", domain.ErrDataUnavailable, i, err)
		}
		products[i].Tags = uniqueTags(products[i].Tags)
	}

	for i := range purchases {
		if err := l.validate.Struct(&purchases[i]); err != nil {
			return Dataset{}, fmt.Errorf("%w: ledger record %d: %w", domain.ErrDataUnavailable, i, err)
		}
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return Dataset{
		Products:  products,
		Purchases: purchases,
		ByID:      byID,
	}, nil
}

func (l *Loader) readError(ctx context.Context, source string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("context error: %w", ctxErr)
	}
	return fmt.Errorf("%w: failed to read %s: %w", domain.ErrDataUnavailable, source, err)
}

// uniqueTags drops repeated tags, keeping first-seen order.
func uniqueTags(tags []string) []string {
	if len(tags) < 2 {
		return tags
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
