package breaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"productReco/domain"

	gobreaker "github.com/sony/gobreaker/v2"
)

type flakyStore struct {
	err   error
	calls int
}

func (f *flakyStore) Products(ctx context.Context) ([]domain.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Product{{ID: "P1"}}, nil
}

func (f *flakyStore) Purchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []domain.PurchaseRecord{{UserID: "U1", Products: []string{"P1"}}}, nil
}

func TestStore_PassesThrough(t *testing.T) {
	s := NewStore(&flakyStore{}, Settings{})

	products, err := s.Products(context.Background())
	if err != nil || len(products) != 1 || products[0].ID != "P1" {
		t.Fatalf("Products() = %v, %v", products, err)
	}
	purchases, err := s.Purchases(context.Background())
	if err != nil || len(purchases) != 1 || purchases[0].UserID != "U1" {
		t.Fatalf("Purchases() = %v, %v", purchases, err)
	}
}

func TestStore_OpensAfterConsecutiveFailures(t *testing.T) {
	backend := &flakyStore{err: errors.New("connection refused")}
	s := NewStore(backend, Settings{ConsecutiveFailures: 3, OpenTimeout: time.Hour})

	for range 3 {
		if _, err := s.Products(context.Background()); err == nil {
			t.Fatal("expected backend error")
		}
	}
	if s.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open", s.State())
	}

	_, err := s.Purchases(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("err = %v, want open-state rejection", err)
	}
	if backend.calls != 3 {
		t.Errorf("backend called %d times, want 3", backend.calls)
	}
}

func TestStore_ContextErrorsDoNotTrip(t *testing.T) {
	backend := &flakyStore{err: context.DeadlineExceeded}
	s := NewStore(backend, Settings{ConsecutiveFailures: 2, OpenTimeout: time.Hour})

	for range 5 {
		_, _ = s.Products(context.Background())
	}
	if s.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", s.State())
	}
}
