package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "sapbridge/internal/errors"
)

func TestNewSalesOrderItem_ComputesTotalPrice(t *testing.T) {
	item, err := NewSalesOrderItem(10, "M1", "Material one", 2, decimal.RequireFromString("10.50"), "UN")

	assert.NoError(t, err)
	assert.Equal(t, 10, item.ItemNumber)
	assert.Equal(t, "M1", item.MaterialCode)
	assert.Equal(t, "Material one", item.MaterialDescription)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.TotalPrice.Equal(decimal.RequireFromString("21.00")),
		"expected total 21.00, got %s", item.TotalPrice)
}

func TestNewSalesOrderItem_DefaultsUnit(t *testing.T) {
	item, err := NewSalesOrderItem(10, "M1", "Material one", 1, decimal.RequireFromString("5"), "")

	assert.NoError(t, err)
	assert.Equal(t, DefaultUnit, item.Unit)
}

func TestNewSalesOrderItem_NoRoundingDrift(t *testing.T) {
	// 0.1 is not representable in binary floating point; the decimal total
	// must still be exact after many lines.
	unitPrice := decimal.RequireFromString("0.10")

	total := decimal.Zero
	for i := 0; i < 1000; i++ {
		item, err := NewSalesOrderItem(10*(i+1), "M1", "Cheap material", 3, unitPrice, "UN")
		assert.NoError(t, err)
		total = total.Add(item.TotalPrice)
	}

	assert.True(t, total.Equal(decimal.RequireFromString("300")),
		"expected exact total 300, got %s", total)
}

func TestNewSalesOrderItem_ZeroQuantity(t *testing.T) {
	_, err := NewSalesOrderItem(10, "M1", "Material one", 0, decimal.RequireFromString("10"), "UN")

	ve, ok := apperrors.IsValidationError(err)
	assert.True(t, ok, "expected ValidationError, got %T", err)
	assert.Equal(t, "quantity", ve.Details[0].Field)
}

func TestNewSalesOrderItem_NegativeQuantity(t *testing.T) {
	_, err := NewSalesOrderItem(10, "M1", "Material one", -3, decimal.RequireFromString("10"), "UN")

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok, "expected ValidationError, got %T", err)
}

func TestNewSalesOrderItem_ZeroUnitPrice(t *testing.T) {
	_, err := NewSalesOrderItem(10, "M1", "Material one", 1, decimal.Zero, "UN")

	ve, ok := apperrors.IsValidationError(err)
	assert.True(t, ok, "expected ValidationError, got %T", err)
	assert.Equal(t, "unitPrice", ve.Details[0].Field)
}

func TestNewSalesOrderItem_NegativeUnitPrice(t *testing.T) {
	_, err := NewSalesOrderItem(10, "M1", "Material one", 1, decimal.RequireFromString("-0.01"), "UN")

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok, "expected ValidationError, got %T", err)
}
