package router

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/ordercenter/internal/api"
	m "github.com/RoyceAzure/lab/ordercenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, idempotencyService service.IIdempotencyService, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)
	r.Use(m.IdempotencyMiddleware(idempotencyService, logger))

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.Patch("/{id}/status", server.OrderHandler.UpdateOrderStatus)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", server.ProductHandler.CreateProduct)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.Put("/{id}", server.ProductHandler.UpdateProduct)
			r.Delete("/{id}", server.ProductHandler.DeleteProduct)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", server.CustomerHandler.CreateCustomer)
			r.Get("/{id}", server.CustomerHandler.GetCustomer)
			r.Put("/{id}", server.CustomerHandler.UpdateCustomer)
			r.Delete("/{id}", server.CustomerHandler.DeleteCustomer)
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
