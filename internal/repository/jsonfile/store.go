package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"productReco/domain"

	"github.com/goccy/go-json"
)

const (
	ProductsFile  = "products.json"
	PurchasesFile = "purchases.json"
)

// Store reads the catalog and ledger from two JSON files in one directory.
// Files are read on every call; nothing is cached.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
	}
}

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.readJSON(ctx, ProductsFile, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) Purchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	var purchases []domain.PurchaseRecord
	if err := s.readJSON(ctx, PurchasesFile, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (s *Store) readJSON(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := json.UnmarshalContext(ctx, raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
