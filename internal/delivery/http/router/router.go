// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quitanda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	AddressHandler *handler.AddressHandler
	AccountHandler *handler.AccountHandler
	StoreHandler   *handler.StoreHandler
	CatalogHandler *handler.CatalogHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	addressHandler *handler.AddressHandler
	accountHandler *handler.AccountHandler
	storeHandler   *handler.StoreHandler
	catalogHandler *handler.CatalogHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		addressHandler: params.AddressHandler,
		accountHandler: params.AccountHandler,
		storeHandler:   params.StoreHandler,
		catalogHandler: params.CatalogHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	orderGroup := api.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:uuid", r.orderHandler.GetOrder)
		orderGroup.PATCH("/:uuid/status", r.orderHandler.UpdateStatus)
		orderGroup.PUT("/:uuid/items", r.orderHandler.ReplaceItems)
	}

	addressGroup := api.Group("/addresses")
	{
		addressGroup.POST("", r.addressHandler.SaveAddress)
		addressGroup.PUT("", r.addressHandler.SaveAddress)
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.GET("/:uuid", r.addressHandler.GetAddress)
		addressGroup.DELETE("/:uuid", r.addressHandler.DeleteAddress)
	}

	accountGroup := api.Group("/accounts")
	{
		accountGroup.POST("", r.accountHandler.CreateAccount)
		accountGroup.GET("/:uuid", r.accountHandler.GetAccount)
		accountGroup.POST("/:uuid/promote", r.accountHandler.PromoteToAdmin)
	}

	storeGroup := api.Group("/stores")
	{
		storeGroup.POST("", r.storeHandler.CreateStore)
		storeGroup.GET("", r.storeHandler.ListStores)
		storeGroup.GET("/:uuid", r.storeHandler.GetStore)
		storeGroup.GET("/:uuid/qrcode", r.storeHandler.GetMenuQR)
		storeGroup.GET("/:uuid/catalog", r.catalogHandler.GetCatalog)
	}

	catalogGroup := api.Group("/catalog")
	{
		catalogGroup.POST("/sections", r.catalogHandler.CreateSection)
		catalogGroup.POST("/products", r.catalogHandler.CreateProduct)
	}
}
