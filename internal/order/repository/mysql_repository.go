package repository

import (
	"context"
	"database/sql"
	"fmt"

	"sapbridge/internal/domain"
	apperrors "sapbridge/internal/errors"
)

// MySQLRepository is the durable alternative to MemoryRepository, enabled
// with STORAGE_DRIVER=mysql. The aggregate is written in one transaction
// so an order never appears without its items.
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Create(ctx context.Context, order *domain.SalesOrder) (*domain.SalesOrder, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	// MySQL ignores rollback if already committed.
	defer tx.Rollback()

	insertOrder := `
		INSERT INTO SalesOrders (salesOrderNumber, orderDate, customerCode, customerName, totalAmount, currency, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = tx.ExecContext(ctx, insertOrder,
		order.SalesOrderNumber, order.OrderDate, order.CustomerCode, order.CustomerName,
		order.TotalAmount, order.Currency, string(order.Status),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting sales order: %w", err)
	}

	insertItem := `
		INSERT INTO SalesOrderItems (salesOrderNumber, itemNumber, materialCode, materialDescription, quantity, unitPrice, totalPrice, unit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, insertItem,
			order.SalesOrderNumber, item.ItemNumber, item.MaterialCode, item.MaterialDescription,
			item.Quantity, item.UnitPrice, item.TotalPrice, item.Unit,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting sales order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sales order: %w", err)
	}

	return order, nil
}

func (r *MySQLRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.SalesOrder, error) {
	query := `
		SELECT salesOrderNumber, orderDate, customerCode, customerName, totalAmount, currency, status
		FROM SalesOrders
		WHERE salesOrderNumber = ?
	`

	var order domain.SalesOrder
	var status string
	err := r.db.QueryRowContext(ctx, query, orderNumber).Scan(
		&order.SalesOrderNumber, &order.OrderDate, &order.CustomerCode, &order.CustomerName,
		&order.TotalAmount, &order.Currency, &status,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("sales order %s not found", orderNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("querying sales order: %w", err)
	}

	order.Status = domain.SalesOrderStatus(status)

	items, err := r.loadItems(ctx, order.SalesOrderNumber)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *MySQLRepository) GetAll(ctx context.Context) ([]*domain.SalesOrder, error) {
	query := `
		SELECT salesOrderNumber, orderDate, customerCode, customerName, totalAmount, currency, status
		FROM SalesOrders
		ORDER BY orderDate, salesOrderNumber
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sales orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.SalesOrder
	for rows.Next() {
		var order domain.SalesOrder
		var status string
		err := rows.Scan(
			&order.SalesOrderNumber, &order.OrderDate, &order.CustomerCode, &order.CustomerName,
			&order.TotalAmount, &order.Currency, &status,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning sales order: %w", err)
		}
		order.Status = domain.SalesOrderStatus(status)
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales orders: %w", err)
	}

	for _, order := range orders {
		items, err := r.loadItems(ctx, order.SalesOrderNumber)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return orders, nil
}

func (r *MySQLRepository) loadItems(ctx context.Context, orderNumber string) ([]domain.SalesOrderItem, error) {
	query := `
		SELECT itemNumber, materialCode, materialDescription, quantity, unitPrice, totalPrice, unit
		FROM SalesOrderItems
		WHERE salesOrderNumber = ?
		ORDER BY itemNumber
	`

	rows, err := r.db.QueryContext(ctx, query, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("querying sales order items: %w", err)
	}
	defer rows.Close()

	items := []domain.SalesOrderItem{}
	for rows.Next() {
		var item domain.SalesOrderItem
		err := rows.Scan(
			&item.ItemNumber, &item.MaterialCode, &item.MaterialDescription,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.Unit,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning sales order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales order items: %w", err)
	}

	return items, nil
}
