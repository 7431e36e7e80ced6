package repository

import (
	"context"
	"fmt"
	"sync"

	"sapbridge/internal/domain"
	apperrors "sapbridge/internal/errors"
)

// MemoryRepository keeps sales orders in process memory, keyed by order
// number. A single mutex guards every access so concurrent creates and
// reads never see a torn aggregate. Orders are stored and returned as
// copies to keep the internal state out of reach of callers.
type MemoryRepository struct {
	mu     sync.Mutex
	orders map[string]*domain.SalesOrder
	seq    []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders: make(map[string]*domain.SalesOrder),
	}
}

func (r *MemoryRepository) Create(_ context.Context, order *domain.SalesOrder) (*domain.SalesOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.SalesOrderNumber]; exists {
		return nil, apperrors.NewInternalError(
			fmt.Sprintf("sales order %s already stored", order.SalesOrderNumber), nil)
	}

	r.orders[order.SalesOrderNumber] = cloneOrder(order)
	r.seq = append(r.seq, order.SalesOrderNumber)

	return order, nil
}

func (r *MemoryRepository) GetByOrderNumber(_ context.Context, orderNumber string) (*domain.SalesOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderNumber]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("sales order %s not found", orderNumber))
	}

	return cloneOrder(order), nil
}

// GetAll returns a snapshot of every stored order in insertion order.
func (r *MemoryRepository) GetAll(_ context.Context) ([]*domain.SalesOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]*domain.SalesOrder, len(r.seq))
	for i, number := range r.seq {
		orders[i] = cloneOrder(r.orders[number])
	}

	return orders, nil
}

func cloneOrder(order *domain.SalesOrder) *domain.SalesOrder {
	clone := *order
	clone.Items = make([]domain.SalesOrderItem, len(order.Items))
	copy(clone.Items, order.Items)
	return &clone
}
