package api

import "github.com/RoyceAzure/lab/ordercenter/internal/api/handler"

type Server struct {
	OrderHandler    *handler.OrderHandler
	ProductHandler  *handler.ProductHandler
	CustomerHandler *handler.CustomerHandler
}

func NewServer(
	orderHandler *handler.OrderHandler,
	productHandler *handler.ProductHandler,
	customerHandler *handler.CustomerHandler,
) *Server {
	return &Server{
		OrderHandler:    orderHandler,
		ProductHandler:  productHandler,
		CustomerHandler: customerHandler,
	}
}
