package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"productReco/domain"
	"productReco/pkg/logger"
)

// Service is the engine's entry point. Every call reloads the catalog and
// ledger and rebuilds the aggregates, so concurrent calls share nothing.
type Service struct {
	loader *Loader
}

func NewService(store Store) *Service {
	return &Service{
		loader: NewLoader(store),
	}
}

// ListCatalog returns the full product catalog in store order.
func (s *Service) ListCatalog(ctx context.Context) ([]domain.Product, error) {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ds.Products, nil
}

// ListUserIDs returns one entry per ledger record. Users with several
// baskets appear several times; integrators wanting distinct users must
// deduplicate themselves.
func (s *Service) ListUserIDs(ctx context.Context) ([]domain.UserRef, error) {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]domain.UserRef, 0, len(ds.Purchases))
	for _, row := range ds.Purchases {
		users = append(users, domain.UserRef{ID: row.UserID})
	}
	return users, nil
}

// Recommend ranks the catalog against productID. An unknown productID fails
// with domain.ErrUnknownProduct; an unknown user is served unpersonalised.
func (s *Service) Recommend(ctx context.Context, productID string, opts Options) ([]domain.AnnotatedProduct, error) {
	recs, err := s.recommend(ctx, productID, opts)

	outcome := "ok"
	switch {
	case errors.Is(err, domain.ErrUnknownProduct):
		outcome = "unknown_product"
	case errors.Is(err, domain.ErrDataUnavailable):
		outcome = "data_unavailable"
	case err != nil:
		outcome = "error"
	}
	RecommendRequestsTotal.
		WithLabelValues(outcome, strconv.FormatBool(opts.UserID != "")).
		Inc()

	return recs, err
}

func (s *Service) recommend(ctx context.Context, productID string, opts Options) ([]domain.AnnotatedProduct, error) {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	current, ok := ds.ByID[productID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProduct, productID)
	}

	agg := BuildAggregates(ds)
	prof := agg.Profile(opts.UserID)

	recs := Rank(current, ds.Products, agg, prof, opts)

	logger.Debug("recommend",
		"trace_id", TraceIDFromContext(ctx),
		"product_id", productID,
		"user_id", opts.UserID,
		"personalized", prof != nil,
		"exclude_owned", opts.ExcludeOwned,
		"top", opts.TopN,
		"catalog_size", len(ds.Products),
		"ledger_size", len(ds.Purchases),
		"returned", len(recs),
	)

	return recs, nil
}
