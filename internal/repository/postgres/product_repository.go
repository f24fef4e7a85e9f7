package postgres

import (
	"context"
	"fmt"
	"time"

	"productReco/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CREATE TABLE public.products (
//     id          TEXT PRIMARY KEY,
//     category    TEXT NOT NULL DEFAULT '',
//     brand       TEXT NOT NULL DEFAULT '',
//     price       NUMERIC NOT NULL DEFAULT 0,
//     tags        JSONB NOT NULL DEFAULT '[]',
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type ProductRecord struct {
	ID        string                      `gorm:"column:id;primaryKey;type:text"`
	Category  string                      `gorm:"column:category;type:text"`
	Brand     string                      `gorm:"column:brand;type:text"`
	Price     float64                     `gorm:"column:price;type:numeric"`
	Tags      datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb"`
	CreatedAt time.Time                   `gorm:"column:created_at;autoCreateTime"`
}

func (ProductRecord) TableName() string {
	return "products"
}

func (r ProductRecord) toDomain() domain.Product {
	return domain.Product{
		ID:       r.ID,
		Category: r.Category,
		Brand:    r.Brand,
		Price:    r.Price,
		Tags:     []string(r.Tags),
	}
}

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

// FindAll returns the catalog in insertion order.
func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []ProductRecord
	err := r.DB.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toDomain())
	}

	return products, nil
}
