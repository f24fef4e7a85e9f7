package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestStore_Read(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ProductsFile, `[
		{"id":"P1","category":"shoes","brand":"X","price":100,"tags":["run"]},
		{"id":"P3","category":"hats","brand":"Y","price":20.5}
	]`)
	writeFile(t, dir, PurchasesFile, `[
		{"userId":"U1","products":["P1","P3","P1"]},
		{"userId":"U2"}
	]`)

	s := NewStore(dir)
	ctx := context.Background()

	products, err := s.Products(ctx)
	if err != nil {
		t.Fatalf("Products() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if p := products[1]; p.ID != "P3" || p.Price != 20.5 || p.Tags != nil {
		t.Errorf("P3 = %+v", p)
	}

	purchases, err := s.Purchases(ctx)
	if err != nil {
		t.Fatalf("Purchases() error = %v", err)
	}
	if !slices.Equal(purchases[0].Products, []string{"P1", "P3", "P1"}) {
		t.Errorf("basket = %v", purchases[0].Products)
	}
	if purchases[1].UserID != "U2" || len(purchases[1].Products) != 0 {
		t.Errorf("second record = %+v, want empty basket", purchases[1])
	}
}

func TestStore_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		read  func(s *Store) error
	}{
		{
			name:  "missing catalog",
			files: map[string]string{},
			read: func(s *Store) error {
				_, err := s.Products(context.Background())
				return err
			},
		},
		{
			name:  "malformed ledger",
			files: map[string]string{PurchasesFile: `[{"userId":"U1","products":`},
			read: func(s *Store) error {
				_, err := s.Purchases(context.Background())
				return err
			},
		},
		{
			name:  "wrong price type",
			files: map[string]string{ProductsFile: `[{"id":"P1","price":"cheap"}]`},
			read: func(s *Store) error {
				_, err := s.Products(context.Background())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tt.files {
				writeFile(t, dir, name, body)
			}
			if err := tt.read(NewStore(dir)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestStore_ContextCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ProductsFile, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewStore(dir).Products(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
