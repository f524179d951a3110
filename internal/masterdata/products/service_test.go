package products

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo, err := NewRepository(context.Background(), kv.NewMemory())
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	return NewService(repo)
}

func TestSeededCatalog(t *testing.T) {
	svc := newTestService(t)
	p, err := svc.Get(context.Background(), "P1")
	if err != nil {
		t.Fatalf("Get P1: %v", err)
	}
	if !p.UnitPrice.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("P1 price = %s, want 12.50", p.UnitPrice)
	}
	records, err := svc.List(context.Background())
	if err != nil || len(records) != 6 {
		t.Fatalf("List = %d records, %v; want 6", len(records), err)
	}
}

func TestCreateRejectsBadPrice(t *testing.T) {
	svc := newTestService(t)
	for _, price := range []string{"", "abc", "-1.00"} {
		_, err := svc.Create(context.Background(), CreateProductRequest{
			Name:       "Cetirizine 10mg",
			DosageForm: "Tablet",
			UnitPrice:  price,
			Category:   "OTC",
		})
		if !errors.Is(err, httpx.ErrValidation) {
			t.Fatalf("price %q: expected validation error, got %v", price, err)
		}
	}
}

func TestCreateProduct(t *testing.T) {
	svc := newTestService(t)
	p, err := svc.Create(context.Background(), CreateProductRequest{
		Name:       "Cetirizine 10mg",
		DosageForm: "Tablet",
		Strength:   "10mg",
		PackSize:   "10s",
		UnitPrice:  "3.25",
		Category:   "OTC",
		Stock:      900,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.UnitPrice.Equal(decimal.RequireFromString("3.25")) {
		t.Fatalf("stored price = %s", got.UnitPrice)
	}
}
