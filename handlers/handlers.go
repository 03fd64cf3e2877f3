package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"glitchmart/config"
	"glitchmart/core"
	"glitchmart/database"
	"glitchmart/models"
	"glitchmart/service"
	"glitchmart/version"

	"github.com/gin-gonic/gin"
)

var (
	emitter   *core.Emitter
	incidents *core.IncidentBuilder

	processStart = time.Now()
)

// Configure wires the log emitter and incident builder used by every
// handler. Must be called before routes are served.
func Configure(e *core.Emitter, b *core.IncidentBuilder) {
	emitter = e
	incidents = b
}

// emitEvent ships a best-effort traffic record for the current request.
// It never affects the HTTP outcome already being returned.
func emitEvent(c *gin.Context, level, serviceName, dataset, moduleName, message string, status int, start time.Time, metadata map[string]any) {
	rec := incidents.BuildEventLog(level, serviceName, dataset, moduleName, message)
	rec.HTTP = &models.HTTPContext{
		Request:  models.HTTPRequestInfo{Method: c.Request.Method, Path: c.Request.URL.Path},
		Response: models.HTTPResponseInfo{StatusCode: status, DurationMS: time.Since(start).Milliseconds()},
	}
	rec.Metadata = metadata
	emitter.Emit(rec)
}

// ListProducts serves one catalog page. With jamPagination enabled every
// request is pinned to page 1 and answered 503 regardless of the page asked
// for, alongside a synthetic upstream-timeout incident.
func ListProducts(c *gin.Context) {
	start := time.Now()

	requestedPage := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			requestedPage = p
		}
	}

	jammed := service.GlobalServices.Fault.IsEnabled(models.FaultJamPagination)

	page := requestedPage
	if jammed {
		page = 1
	}

	products, totalPages, err := service.GlobalServices.Product.List(page)
	if err != nil {
		emitEvent(c, models.LevelError, "api-products", "products", "product-list-handler",
			"Failed to fetch products", http.StatusInternalServerError, start, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	if jammed {
		core.FaultsTriggered.WithLabelValues(models.FaultJamPagination).Inc()
		emitter.Emit(incidents.BuildIncidentLog(models.FaultJamPagination, "api-products", "product-list-handler"))

		c.Header("Retry-After", "300")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":         "Pagination is temporarily unavailable due to a service degradation",
			"code":          "PAGINATION_JAMMED",
			"requestedPage": requestedPage,
			"products":      products,
			"totalPages":    1,
			"currentPage":   1,
			"isJammed":      true,
		})
		return
	}

	emitEvent(c, models.LevelInfo, "api-products", "products", "product-list-handler",
		fmt.Sprintf("Fetched product list (page=%d)", page), http.StatusOK, start,
		map[string]any{"page": page})

	c.JSON(http.StatusOK, gin.H{
		"products":    products,
		"totalPages":  totalPages,
		"currentPage": page,
		"isJammed":    false,
	})
}

// GetProduct serves a single product. With fakeOutOfStock enabled the
// product is reported with zero stock at a 503, alongside a synthetic
// database-connection incident.
func GetProduct(c *gin.Context) {
	start := time.Now()
	id := c.Param("id")

	product, err := service.GlobalServices.Product.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			emitEvent(c, models.LevelWarn, "api-products-detail", "products", "product-detail-handler",
				fmt.Sprintf("Product not found (id=%s)", id), http.StatusNotFound, start,
				map[string]any{"id": id})
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		emitEvent(c, models.LevelError, "api-products-detail", "products", "product-detail-handler",
			"Failed to fetch product detail", http.StatusInternalServerError, start,
			map[string]any{"id": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	if service.GlobalServices.Fault.IsEnabled(models.FaultFakeOutOfStock) {
		core.FaultsTriggered.WithLabelValues(models.FaultFakeOutOfStock).Inc()
		emitter.Emit(incidents.BuildIncidentLog(models.FaultFakeOutOfStock, "api-products-detail", "product-detail-handler"))

		c.Header("Retry-After", "300")
		c.Header("X-Error-Code", "STOCK_UNAVAILABLE")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"id":          product.ID,
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"imageUrl":    product.ImageURL,
			"stock":       0,
			"error":       "Product temporarily out of stock",
			"code":        "STOCK_UNAVAILABLE",
			"message":     "This product is currently out of stock due to a service degradation",
		})
		return
	}

	emitEvent(c, models.LevelInfo, "api-products-detail", "products", "product-detail-handler",
		fmt.Sprintf("Fetched product detail (id=%s)", id), http.StatusOK, start,
		map[string]any{"id": id})

	c.JSON(http.StatusOK, product)
}

// AddToCart accepts an add-to-cart request. With disableAddToCart enabled
// the endpoint is answered 503 alongside a synthetic out-of-memory
// incident. Cart state itself lives client-side; this endpoint validates
// and acknowledges.
func AddToCart(c *gin.Context) {
	start := time.Now()

	if service.GlobalServices.Fault.IsEnabled(models.FaultDisableAddToCart) {
		core.FaultsTriggered.WithLabelValues(models.FaultDisableAddToCart).Inc()
		emitter.Emit(incidents.BuildIncidentLog(models.FaultDisableAddToCart, "api-cart", "cart-handler"))

		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Add to cart functionality is currently disabled"})
		return
	}

	var req models.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and quantity are required"})
		return
	}
	req.Normalize()

	if req.ProductID == "" || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID and quantity are required"})
		return
	}

	emitEvent(c, models.LevelInfo, "api-cart", "cart", "cart-handler",
		fmt.Sprintf("Added product to cart (id=%s, quantity=%d)", req.ProductID, req.Quantity),
		http.StatusOK, start, map[string]any{"productId": req.ProductID, "quantity": req.Quantity})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product added to cart successfully",
		"data":    gin.H{"productId": req.ProductID, "quantity": req.Quantity},
	})
}

// setNoCacheHeaders keeps intermediaries from serving stale fault state
// to the chaos panel.
func setNoCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}

// GetFaults returns the total fault snapshot.
func GetFaults(c *gin.Context) {
	setNoCacheHeaders(c)
	c.JSON(http.StatusOK, service.GlobalServices.Fault.GetStatus())
}

// EnableFault turns a fault on.
func EnableFault(c *gin.Context) {
	toggleFault(c, true)
}

// DisableFault turns a fault off.
func DisableFault(c *gin.Context) {
	toggleFault(c, false)
}

func toggleFault(c *gin.Context, enabled bool) {
	start := time.Now()
	name := c.Param("name")

	verb := "disable"
	if enabled {
		verb = "enable"
	}

	status, err := service.GlobalServices.Fault.SetStatus(name, enabled)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFault) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fault name"})
			return
		}
		emitEvent(c, models.LevelError, "api-faults", "chaos", "fault-admin-handler",
			fmt.Sprintf("Failed to %s fault %s: %v", verb, name, err),
			http.StatusInternalServerError, start, map[string]any{"fault": name})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + verb + " fault"})
		return
	}

	emitEvent(c, models.LevelInfo, "api-faults", "chaos", "fault-admin-handler",
		fmt.Sprintf("Fault %s %sd", name, verb), http.StatusOK, start,
		map[string]any{"fault": name, "enabled": enabled})

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s fault %sd", name, verb),
		"faults":  status,
	})
}

// HealthCheck reports process and database health.
func HealthCheck(c *gin.Context) {
	start := time.Now()

	dbHealthy := true
	if database.DB == nil {
		dbHealthy = false
	} else if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbHealthy = false
	}

	health := gin.H{
		"status":     "ok",
		"timestamp":  time.Now().Unix(),
		"db_healthy": dbHealthy,
		"version":    version.GetVersion(),
	}

	if !dbHealthy {
		emitEvent(c, models.LevelError, "api-health", "health", "health-handler",
			"Health check failed.", http.StatusServiceUnavailable, start, nil)
		health["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	emitEvent(c, models.LevelInfo, "api-health", "health", "health-handler",
		"Health check passed.", http.StatusOK, start, nil)
	c.JSON(http.StatusOK, health)
}

// Heartbeat emits a synthetic scheduler heartbeat record for the
// observability pipeline demo.
func Heartbeat(c *gin.Context) {
	rec := incidents.BuildEventLog(models.LevelInfo, "api-heartbeat", "heartbeat", "scheduler",
		"Health check passed. Service is healthy.")
	rec.HTTP = &models.HTTPContext{
		Request:  models.HTTPRequestInfo{Method: http.MethodGet, Path: "/health"},
		Response: models.HTTPResponseInfo{StatusCode: http.StatusOK, DurationMS: int64(rand.Intn(20) + 10)},
	}
	rec.Metadata = map[string]any{
		"region": config.Settings.Region,
		"uptime": int64(time.Since(processStart).Seconds()),
	}
	emitter.Emit(rec)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
