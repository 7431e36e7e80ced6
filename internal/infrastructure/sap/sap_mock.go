package sap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sapbridge/internal/config"
	"sapbridge/internal/domain"
	apperrors "sapbridge/internal/errors"
)

// Mock stands in for the SAP S/4HANA SD connector. A real binding would go
// through BAPI_SALESORDER_CREATEFROMDAT2 over RFC or the S/4HANA OData API;
// this one only simulates the network round trip.
type Mock struct {
	logger      *zap.Logger
	createDelay time.Duration
	getDelay    time.Duration
}

func NewMock(cfg config.SAPConfig, logger *zap.Logger) *Mock {
	return &Mock{
		logger:      logger,
		createDelay: cfg.CreateDelay,
		getDelay:    cfg.GetDelay,
	}
}

func (m *Mock) CreateSalesOrderInSap(ctx context.Context, order *domain.SalesOrder) (*domain.SalesOrder, error) {
	if err := sleep(ctx, m.createDelay); err != nil {
		return nil, err
	}

	m.logger.Info("sales order created in SAP SD",
		zap.String("salesOrderNumber", order.SalesOrderNumber),
		zap.String("customerCode", order.CustomerCode),
	)

	return order, nil
}

func (m *Mock) GetSalesOrderFromSap(ctx context.Context, orderNumber string) (*domain.SalesOrder, error) {
	if err := sleep(ctx, m.getDelay); err != nil {
		return nil, err
	}

	m.logger.Info("sales order lookup in SAP SD", zap.String("salesOrderNumber", orderNumber))

	return nil, apperrors.NewNotFoundError(fmt.Sprintf("sales order %s not found in SAP", orderNumber))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
