package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"sapbridge/internal/domain"
	apperrors "sapbridge/internal/errors"
)

type fixedNumberGenerator struct {
	number string
}

func (g fixedNumberGenerator) Next() string {
	return g.number
}

func buildOrder(t *testing.T, orderNumber string) *domain.SalesOrder {
	t.Helper()

	order, err := domain.NewSalesOrder("C001", "Acme", "BRL", fixedNumberGenerator{number: orderNumber})
	if err != nil {
		t.Fatalf("creating order: %v", err)
	}

	item, err := domain.NewSalesOrderItem(10, "M1", "Material one", 2, decimal.RequireFromString("10.50"), "UN")
	if err != nil {
		t.Fatalf("creating item: %v", err)
	}

	if err := order.AddItem(item); err != nil {
		t.Fatalf("adding item: %v", err)
	}

	if err := order.Confirm(); err != nil {
		t.Fatalf("confirming order: %v", err)
	}

	return order
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	order := buildOrder(t, "4000000001")

	created, err := repo.Create(ctx, order)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.SalesOrderNumber != "4000000001" {
		t.Errorf("expected order returned unchanged, got %s", created.SalesOrderNumber)
	}

	found, err := repo.GetByOrderNumber(ctx, "4000000001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found.CustomerCode != "C001" || len(found.Items) != 1 {
		t.Errorf("stored order does not match: %+v", found)
	}
	if !found.TotalAmount.Equal(decimal.RequireFromString("21.00")) {
		t.Errorf("expected total 21.00, got %s", found.TotalAmount)
	}
}

func TestMemoryRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.GetByOrderNumber(ctx, "4000009999")

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestMemoryRepository_GetAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, number := range []string{"4000000003", "4000000001", "4000000002"} {
		if _, err := repo.Create(ctx, buildOrder(t, number)); err != nil {
			t.Fatalf("creating %s: %v", number, err)
		}
	}

	orders, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"4000000003", "4000000001", "4000000002"}
	if len(orders) != len(want) {
		t.Fatalf("expected %d orders, got %d", len(want), len(orders))
	}
	for i, number := range want {
		if orders[i].SalesOrderNumber != number {
			t.Errorf("position %d: expected %s, got %s", i, number, orders[i].SalesOrderNumber)
		}
	}
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if _, err := repo.Create(ctx, buildOrder(t, "4000000001")); err != nil {
		t.Fatalf("creating order: %v", err)
	}

	first, err := repo.GetByOrderNumber(ctx, "4000000001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Mutating a returned order must not leak into the store.
	first.CustomerName = "Mutated"
	first.Items[0].MaterialCode = "HACKED"

	second, err := repo.GetByOrderNumber(ctx, "4000000001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.CustomerName != "Acme" {
		t.Errorf("stored order was mutated through a returned copy")
	}
	if second.Items[0].MaterialCode != "M1" {
		t.Errorf("stored items were mutated through a returned copy")
	}
}

func TestMemoryRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	const n = 100
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order := buildOrder(t, fmt.Sprintf("40%08d", i))
			if _, err := repo.Create(ctx, order); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent create failed: %v", err)
	}

	orders, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(orders) != n {
		t.Errorf("expected %d orders, got %d", n, len(orders))
	}

	for i := 0; i < n; i++ {
		number := fmt.Sprintf("40%08d", i)
		if _, err := repo.GetByOrderNumber(ctx, number); err != nil {
			t.Errorf("order %s lost: %v", number, err)
		}
	}
}
