package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateSalesOrderRequest struct {
	CustomerCode string                  `json:"customerCode"`
	CustomerName string                  `json:"customerName"`
	Currency     string                  `json:"currency,omitempty"`
	Items        []SalesOrderItemRequest `json:"items"`
}

type SalesOrderItemRequest struct {
	MaterialCode        string          `json:"materialCode"`
	MaterialDescription string          `json:"materialDescription"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	Unit                string          `json:"unit,omitempty"`
}

type SalesOrderResponse struct {
	SalesOrderNumber string                   `json:"salesOrderNumber"`
	OrderDate        time.Time                `json:"orderDate"`
	CustomerCode     string                   `json:"customerCode"`
	CustomerName     string                   `json:"customerName"`
	TotalAmount      decimal.Decimal          `json:"totalAmount"`
	Currency         string                   `json:"currency"`
	Status           string                   `json:"status"`
	Items            []SalesOrderItemResponse `json:"items"`
}

type SalesOrderItemResponse struct {
	ItemNumber          int             `json:"itemNumber"`
	MaterialCode        string          `json:"materialCode"`
	MaterialDescription string          `json:"materialDescription"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	Unit                string          `json:"unit"`
}
