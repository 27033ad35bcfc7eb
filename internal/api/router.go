package api

import (
	"net/http"

	v1 "github.com/faturo/faturo/internal/api/v1"
	"github.com/faturo/faturo/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Order *v1.OrderHandler
	Board *v1.BoardHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.TenantMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Order routes
	orders := router.Group("/orders")
	{
		orders.GET("/:id", handlers.Order.ResolveOrder)
	}

	// Board routes
	board := router.Group("/board")
	{
		board.GET("", handlers.Board.GetBoard)
		board.PUT("/charges/status", handlers.Board.UpdateChargeStatus)
	}
}
