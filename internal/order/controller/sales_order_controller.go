package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sapbridge/internal/dto"
	apperrors "sapbridge/internal/errors"
)

type SalesOrderUseCase interface {
	CreateSalesOrder(ctx context.Context, req dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error)
	GetSalesOrder(ctx context.Context, orderNumber string) (*dto.SalesOrderResponse, error)
	GetAllSalesOrders(ctx context.Context) ([]dto.SalesOrderResponse, error)
}

type SalesOrderController struct {
	useCase SalesOrderUseCase
	logger  *zap.Logger
}

func NewSalesOrderController(useCase SalesOrderUseCase, logger *zap.Logger) *SalesOrderController {
	return &SalesOrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *SalesOrderController) GetAllSalesOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	logger.Info("listing sales orders")

	orders, err := c.useCase.GetAllSalesOrders(r.Context())
	if err != nil {
		logger.Error("listing sales orders failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusOK, orders)
}

func (c *SalesOrderController) GetSalesOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderNumber := chi.URLParam(r, "orderNumber")
	logger.Info("getting sales order", zap.String("salesOrderNumber", orderNumber))

	order, err := c.useCase.GetSalesOrder(r.Context(), orderNumber)
	if err != nil {
		logger.Error("getting sales order failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	if order == nil {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"message": fmt.Sprintf("Sales order %s not found", orderNumber),
		})
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *SalesOrderController) CreateSalesOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateSalesOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	logger.Info("creating sales order",
		zap.String("customerCode", req.CustomerCode),
		zap.Int("itemCount", len(req.Items)),
	)

	order, err := c.useCase.CreateSalesOrder(r.Context(), req)
	if err != nil {
		c.handleCreateError(w, err, logger)
		return
	}

	w.Header().Set("Location", "/api/salesorder/"+order.SalesOrderNumber)
	c.writeJSON(w, http.StatusCreated, order)
}

func (c *SalesOrderController) handleCreateError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		logger.Warn("validation error creating sales order", zap.Error(err))
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if ioe, ok := apperrors.IsInvalidOperationError(err); ok {
		logger.Warn("invalid operation creating sales order", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "INVALID_OPERATION",
			"message": ioe.Message,
		})
		return
	}

	logger.Error("error creating sales order", zap.Error(err))
	c.writeInternalError(w)
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *SalesOrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *SalesOrderController) writeInternalError(w http.ResponseWriter) {
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *SalesOrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
