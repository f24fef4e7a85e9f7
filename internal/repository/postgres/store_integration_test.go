//go:build integration

package postgres

import (
	"context"
	"os"
	"slices"
	"testing"

	"productReco/pkg/config"
	"productReco/pkg/database"

	"gorm.io/datatypes"
)

// Requires a scratch PostgreSQL database, configured through the usual DB_* variables.
func TestStore_Integration(t *testing.T) {
	if os.Getenv("DB_PASSWORD") == "" {
		t.Skip("DB_PASSWORD not set")
	}

	cfg := &config.Config{
		App: config.AppConfig{Environment: "test"},
		Database: config.DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  "disable",
		},
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		t.Fatalf("InitPostgres() error = %v", err)
	}
	defer database.ClosePostgres(db)

	ctx := context.Background()
	if err := AutoMigrate(ctx, db); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM purchases")
		db.Exec("DELETE FROM products")
	})

	products := []ProductRecord{
		{ID: "P1", Category: "shoes", Brand: "X", Price: 100, Tags: datatypes.NewJSONSlice([]string{"run"})},
		{ID: "P3", Category: "hats", Brand: "Y", Price: 20, Tags: datatypes.NewJSONSlice([]string{})},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatal(err)
	}
	basket := PurchaseRecord{UserID: "U1", Products: datatypes.NewJSONSlice([]string{"P1", "P3", "P1"})}
	if err := db.Create(&basket).Error; err != nil {
		t.Fatal(err)
	}

	store := NewStore(db)

	gotProducts, err := store.Products(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotProducts) != 2 {
		t.Fatalf("got %d products, want 2", len(gotProducts))
	}

	gotPurchases, err := store.Purchases(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotPurchases) != 1 || !slices.Equal(gotPurchases[0].Products, []string{"P1", "P3", "P1"}) {
		t.Errorf("purchases = %+v", gotPurchases)
	}
}
