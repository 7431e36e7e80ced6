package order

import (
	"database/sql"

	"go.uber.org/zap"

	"sapbridge/internal/config"
	"sapbridge/internal/domain"
	"sapbridge/internal/infrastructure/sap"
	"sapbridge/internal/order/controller"
	orderrepo "sapbridge/internal/order/repository"
	"sapbridge/internal/order/usecase"
)

// NewModule wires the sales-order module. db may be nil when the memory
// storage driver is configured.
func NewModule(cfg *config.Config, db *sql.DB, logger *zap.Logger) *controller.SalesOrderController {
	var repo usecase.SalesOrderRepository
	if cfg.Storage.Driver == config.StorageDriverMySQL {
		repo = orderrepo.NewMySQLRepository(db)
	} else {
		repo = orderrepo.NewMemoryRepository()
	}

	sapSvc := sap.NewMock(cfg.SAP, logger)

	uc := usecase.NewSalesOrderUseCase(
		repo,
		sapSvc,
		domain.NewSapNumberGenerator(),
		logger,
		cfg.Order.DefaultCurrency,
	)

	return controller.NewSalesOrderController(uc, logger)
}
