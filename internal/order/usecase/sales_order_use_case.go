package usecase

import (
	"context"

	"go.uber.org/zap"

	"sapbridge/internal/domain"
	"sapbridge/internal/dto"
	apperrors "sapbridge/internal/errors"
)

type SalesOrderRepository interface {
	Create(ctx context.Context, order *domain.SalesOrder) (*domain.SalesOrder, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.SalesOrder, error)
	GetAll(ctx context.Context) ([]*domain.SalesOrder, error)
}

type SapSdService interface {
	CreateSalesOrderInSap(ctx context.Context, order *domain.SalesOrder) (*domain.SalesOrder, error)
	GetSalesOrderFromSap(ctx context.Context, orderNumber string) (*domain.SalesOrder, error)
}

// SalesOrderUseCase orchestrates order creation: build and validate the
// aggregate, confirm it, submit it to SAP, persist whatever SAP returned,
// and map the result. Any failure stops the sequence; nothing is persisted
// unless the SAP submission succeeded.
type SalesOrderUseCase struct {
	repo            SalesOrderRepository
	sapSvc          SapSdService
	numbers         domain.NumberGenerator
	logger          *zap.Logger
	defaultCurrency string
}

func NewSalesOrderUseCase(
	repo SalesOrderRepository,
	sapSvc SapSdService,
	numbers domain.NumberGenerator,
	logger *zap.Logger,
	defaultCurrency string,
) *SalesOrderUseCase {
	return &SalesOrderUseCase{
		repo:            repo,
		sapSvc:          sapSvc,
		numbers:         numbers,
		logger:          logger,
		defaultCurrency: defaultCurrency,
	}
}

func (uc *SalesOrderUseCase) CreateSalesOrder(ctx context.Context, req dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}

	order, err := domain.NewSalesOrder(req.CustomerCode, req.CustomerName, currency, uc.numbers)
	if err != nil {
		return nil, err
	}

	// SAP SD numbers order lines in increments of 10.
	itemNumber := 10
	for _, itemReq := range req.Items {
		item, err := domain.NewSalesOrderItem(
			itemNumber,
			itemReq.MaterialCode,
			itemReq.MaterialDescription,
			itemReq.Quantity,
			itemReq.UnitPrice,
			itemReq.Unit,
		)
		if err != nil {
			return nil, err
		}

		if err := order.AddItem(item); err != nil {
			return nil, err
		}

		itemNumber += 10
	}

	if err := order.Confirm(); err != nil {
		return nil, err
	}

	uc.logger.Info("submitting sales order to SAP",
		zap.String("salesOrderNumber", order.SalesOrderNumber),
		zap.String("customerCode", order.CustomerCode),
		zap.Int("itemCount", len(order.Items)),
	)

	// The order SAP hands back is the order of record.
	sapOrder, err := uc.sapSvc.CreateSalesOrderInSap(ctx, order)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.Create(ctx, sapOrder)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("sales order created",
		zap.String("salesOrderNumber", created.SalesOrderNumber),
		zap.String("totalAmount", created.TotalAmount.String()),
	)

	resp := mapToResponse(created)
	return &resp, nil
}

// GetSalesOrder returns nil without error when no order matches.
func (uc *SalesOrderUseCase) GetSalesOrder(ctx context.Context, orderNumber string) (*dto.SalesOrderResponse, error) {
	order, err := uc.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, nil
		}
		return nil, err
	}

	resp := mapToResponse(order)
	return &resp, nil
}

func (uc *SalesOrderUseCase) GetAllSalesOrders(ctx context.Context) ([]dto.SalesOrderResponse, error) {
	orders, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SalesOrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = mapToResponse(order)
	}

	return responses, nil
}

func mapToResponse(order *domain.SalesOrder) dto.SalesOrderResponse {
	items := make([]dto.SalesOrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.SalesOrderItemResponse{
			ItemNumber:          item.ItemNumber,
			MaterialCode:        item.MaterialCode,
			MaterialDescription: item.MaterialDescription,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			TotalPrice:          item.TotalPrice,
			Unit:                item.Unit,
		}
	}

	return dto.SalesOrderResponse{
		SalesOrderNumber: order.SalesOrderNumber,
		OrderDate:        order.OrderDate,
		CustomerCode:     order.CustomerCode,
		CustomerName:     order.CustomerName,
		TotalAmount:      order.TotalAmount,
		Currency:         order.Currency,
		Status:           string(order.Status),
		Items:            items,
	}
}
