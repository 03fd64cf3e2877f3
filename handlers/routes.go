package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts every HTTP endpoint on the router.
func RegisterRoutes(r *gin.Engine) {
	// Storefront
	r.GET("/products", ListProducts)
	r.GET("/products/:id", GetProduct)
	r.POST("/cart", AddToCart)

	// Chaos panel
	r.GET("/faults", GetFaults)
	r.POST("/faults/:name/enable", EnableFault)
	r.POST("/faults/:name/disable", DisableFault)

	// Operational
	r.GET("/health", HealthCheck)
	r.POST("/heartbeat", Heartbeat)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
