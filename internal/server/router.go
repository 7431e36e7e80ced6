package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"sapbridge/internal/config"
	"sapbridge/internal/order/controller"
)

func NewRouter(orderCtrl *controller.SalesOrderController, jwtCfg config.JWTConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/salesorder", func(r chi.Router) {
		r.Use(BearerAuth(jwtCfg, logger))
		r.Get("/", orderCtrl.GetAllSalesOrders)
		r.Get("/{orderNumber}", orderCtrl.GetSalesOrder)
		r.Post("/", orderCtrl.CreateSalesOrder)
	})

	return r
}
