package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "sapbridge/internal/errors"
)

// DefaultCurrency is applied when a request omits the currency code.
const DefaultCurrency = "BRL"

type SalesOrderStatus string

const (
	StatusCreated    SalesOrderStatus = "Created"
	StatusConfirmed  SalesOrderStatus = "Confirmed"
	StatusProcessing SalesOrderStatus = "Processing"
	StatusDelivered  SalesOrderStatus = "Delivered"
	StatusCancelled  SalesOrderStatus = "Cancelled"
)

// SalesOrder is the aggregate root for a customer order in the SAP SD sense.
// It owns its items: the list is only grown through AddItem, which keeps
// TotalAmount equal to the sum of the item totals.
type SalesOrder struct {
	SalesOrderNumber string
	OrderDate        time.Time
	CustomerCode     string
	CustomerName     string
	TotalAmount      decimal.Decimal
	Currency         string
	Status           SalesOrderStatus
	Items            []SalesOrderItem
}

// NewSalesOrder builds an order in Created state with no items. The order
// number comes from the injected generator and is never changed afterwards.
func NewSalesOrder(customerCode, customerName, currency string, numbers NumberGenerator) (*SalesOrder, error) {
	if strings.TrimSpace(customerCode) == "" {
		return nil, apperrors.NewValidationError("customer code is required", apperrors.ValidationDetail{
			Field:   "customerCode",
			Message: "customerCode must not be empty",
		})
	}

	if strings.TrimSpace(customerName) == "" {
		return nil, apperrors.NewValidationError("customer name is required", apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName must not be empty",
		})
	}

	if currency == "" {
		currency = DefaultCurrency
	}

	return &SalesOrder{
		SalesOrderNumber: numbers.Next(),
		OrderDate:        time.Now().UTC(),
		CustomerCode:     customerCode,
		CustomerName:     customerName,
		TotalAmount:      decimal.Zero,
		Currency:         currency,
		Status:           StatusCreated,
		Items:            []SalesOrderItem{},
	}, nil
}

// AddItem appends an item and recomputes the order total. Orders that have
// left the Created state no longer accept items.
func (o *SalesOrder) AddItem(item *SalesOrderItem) error {
	if item == nil {
		return apperrors.NewValidationError("item is required", apperrors.ValidationDetail{
			Field:   "item",
			Message: "item must not be nil",
		})
	}

	if o.Status != StatusCreated {
		return apperrors.NewInvalidOperationError("cannot add items to a " + strings.ToLower(string(o.Status)) + " order")
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotalAmount()
	return nil
}

func (o *SalesOrder) recalculateTotalAmount() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice)
	}
	o.TotalAmount = total
}

// Confirm moves the order from Created to Confirmed. Confirming an already
// confirmed order is a no-op.
func (o *SalesOrder) Confirm() error {
	if len(o.Items) == 0 {
		return apperrors.NewInvalidOperationError("cannot confirm order without items")
	}

	switch o.Status {
	case StatusCreated, StatusConfirmed:
		o.Status = StatusConfirmed
		return nil
	default:
		return apperrors.NewInvalidOperationError("cannot confirm a " + strings.ToLower(string(o.Status)) + " order")
	}
}
