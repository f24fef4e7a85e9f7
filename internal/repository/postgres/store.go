package postgres

import (
	"context"
	"fmt"

	"productReco/domain"

	"gorm.io/gorm"
)

// Store adapts the product and purchase repositories to the engine's
// catalog/ledger interface.
type Store struct {
	products  *ProductRepository
	purchases *PurchaseRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		products:  NewProductRepository(db),
		purchases: NewPurchaseRepository(db),
	}
}

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *Store) Purchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	return s.purchases.FindAll(ctx)
}

// AutoMigrate creates or updates the products and purchases tables.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&ProductRecord{}, &PurchaseRecord{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}
