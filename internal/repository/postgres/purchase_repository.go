package postgres

import (
	"context"
	"fmt"
	"time"

	"productReco/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CREATE TABLE public.purchases (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id     TEXT NOT NULL DEFAULT '',
//     products    JSONB NOT NULL DEFAULT '[]',
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type PurchaseRecord struct {
	ID        uint64                      `gorm:"primaryKey;autoIncrement"`
	UserID    string                      `gorm:"column:user_id;type:text"`
	Products  datatypes.JSONSlice[string] `gorm:"column:products;type:jsonb"`
	CreatedAt time.Time                   `gorm:"column:created_at;autoCreateTime"`
}

func (PurchaseRecord) TableName() string {
	return "purchases"
}

func (r PurchaseRecord) toDomain() domain.PurchaseRecord {
	return domain.PurchaseRecord{
		UserID:   r.UserID,
		Products: []string(r.Products),
	}
}

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{
		DB: db,
	}
}

// FindAll returns the whole ledger, one record per basket, oldest first.
func (r *PurchaseRepository) FindAll(ctx context.Context) ([]domain.PurchaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []PurchaseRecord
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find purchases: %w", err)
	}

	purchases := make([]domain.PurchaseRecord, 0, len(rows))
	for _, row := range rows {
		purchases = append(purchases, row.toDomain())
	}

	return purchases, nil
}
