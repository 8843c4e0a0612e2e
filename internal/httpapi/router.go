// Package httpapi serves the charge operations as a JSON REST API.
package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mmynk/cobrancas/internal/middleware"
	"github.com/mmynk/cobrancas/internal/service"
)

// Headers the Connect protocol sends and reads across origins.
const (
	connectProtocolVersionHeader = "Connect-Protocol-Version"
	connectTimeoutHeader         = "Connect-Timeout-Ms"
)

// RouterOption configures the engine built by NewRouter.
type RouterOption func(*gin.Engine)

// WithHandler mounts h under prefix, which must end in "/". Mounted handlers
// run behind the same recovery, request-id, logging, and CORS middleware as
// the REST routes.
func WithHandler(prefix string, h http.Handler) RouterOption {
	return func(r *gin.Engine) {
		r.Any(strings.TrimSuffix(prefix, "/")+"/*path", gin.WrapH(h))
	}
}

// NewRouter builds the REST engine. Call gin.SetMode before it if needed.
func NewRouter(svc *service.ChargeService, opts ...RouterOption) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.GinRequestID())
	r.Use(middleware.GinLogger())
	r.Use(cors.New(corsConfig()))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := NewChargeHandler(svc)
	charges := r.Group("/cobrancas")
	{
		charges.POST("", h.CreateCharge)
		charges.GET("", h.ListCharges)
		charges.GET("/resumo", h.GetSummary)
		charges.PUT("/:id", h.UpdateChargeStatus)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// corsConfig allows any origin, as the browser client is served from a
// different origin. It covers both the REST routes and mounted handlers.
func corsConfig() cors.Config {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	config.AllowHeaders = []string{
		"Origin", "Content-Length", "Content-Type", "Authorization",
		middleware.RequestIDHeader, connectProtocolVersionHeader, connectTimeoutHeader,
	}
	config.ExposeHeaders = []string{middleware.RequestIDHeader, connectProtocolVersionHeader, connectTimeoutHeader}
	return config
}
