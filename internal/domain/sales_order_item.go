package domain

import (
	"github.com/shopspring/decimal"

	apperrors "sapbridge/internal/errors"
)

// DefaultUnit is the SAP SD unit of measure applied when a request omits one.
const DefaultUnit = "UN"

// SalesOrderItem is one priced line of a sales order. Items are built
// through NewSalesOrderItem and never modified afterwards; TotalPrice is
// derived from quantity and unit price at construction.
type SalesOrderItem struct {
	ItemNumber          int
	MaterialCode        string
	MaterialDescription string
	Quantity            int
	UnitPrice           decimal.Decimal
	TotalPrice          decimal.Decimal
	Unit                string
}

func NewSalesOrderItem(
	itemNumber int,
	materialCode string,
	materialDescription string,
	quantity int,
	unitPrice decimal.Decimal,
	unit string,
) (*SalesOrderItem, error) {
	if quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be greater than zero", apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be greater than zero",
		})
	}

	if !unitPrice.IsPositive() {
		return nil, apperrors.NewValidationError("unit price must be greater than zero", apperrors.ValidationDetail{
			Field:   "unitPrice",
			Message: "unitPrice must be greater than zero",
		})
	}

	if unit == "" {
		unit = DefaultUnit
	}

	return &SalesOrderItem{
		ItemNumber:          itemNumber,
		MaterialCode:        materialCode,
		MaterialDescription: materialDescription,
		Quantity:            quantity,
		UnitPrice:           unitPrice,
		TotalPrice:          unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Unit:                unit,
	}, nil
}
