package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/meli-labs/seller-dashboard/internal/token"
	"github.com/meli-labs/seller-dashboard/internal/transport/http/handler"
	"github.com/meli-labs/seller-dashboard/internal/transport/http/middleware"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, marketHandler *handler.MarketplaceHandler, tokens *token.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(tokens)

	auth := r.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authMW, authHandler.Me)
	auth.POST("/logout", authMW, authHandler.Logout)

	// Protected dashboard routes — cross-docking snapshot
	api := r.Group("/api", authMW)
	api.GET("/cd-data", marketHandler.CDData)
	api.GET("/products", marketHandler.CDProducts)
	api.GET("/metrics", marketHandler.CDMetrics)

	// Protected dashboard routes — marketplace facade
	meli := api.Group("/mercadolivre")
	meli.GET("/user", marketHandler.UserInfo)
	meli.GET("/products", marketHandler.Products)
	meli.GET("/orders", marketHandler.Orders)
	meli.GET("/metrics", marketHandler.SalesMetrics)
	meli.GET("/questions", marketHandler.Questions)
	meli.GET("/notifications", marketHandler.Notifications)
	meli.GET("/analytics", marketHandler.Analytics)
	meli.GET("/shipping/:orderID", marketHandler.Shipping)
	meli.PUT("/products/:productID/stock", marketHandler.UpdateStock)

	return r
}
