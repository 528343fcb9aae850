package v1

import (
	"github.com/gin-gonic/gin"

	"shopledger/internal/domain/auth"
	"shopledger/internal/domain/ledger"
	"shopledger/internal/infrastructure/http/v1/handlers"
	"shopledger/internal/infrastructure/http/v1/middleware"
	"shopledger/internal/infrastructure/metrics"
	"shopledger/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Ledger serves every business endpoint
	Ledger *ledger.Ledger

	// Logger for request logging
	Logger *logger.Logger

	// AuthService issues and validates operator tokens. When nil or
	// disabled the API is open.
	AuthService *auth.Service

	// Metrics exposes /metrics and records request metrics (optional)
	Metrics *metrics.Metrics

	// StorageDriver is reported by the readiness probe
	StorageDriver string

	// Pinger checks storage reachability for readiness (optional)
	Pinger handlers.Pinger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!). Recovery sits inside
	// ErrorHandler so a recovered panic is still rendered as JSON.
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(cfg.StorageDriver, cfg.Pinger)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, cfg)

		protected := v1.Group("")
		if cfg.AuthService != nil && cfg.AuthService.Enabled() {
			protected.Use(middleware.Auth(cfg.AuthService))
		}

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
		registerReportRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	var observer handlers.LoginObserver
	if cfg.Metrics != nil {
		observer = cfg.Metrics
	}
	authHandler := handlers.NewAuthHandler(handlers.NewBaseHandler(), cfg.AuthService, observer)

	rg.POST("/auth/login", authHandler.Login)
}

// registerCatalogRoutes registers product, customer and supplier endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	base := handlers.NewBaseHandler()

	productHandler := handlers.NewProductHandler(base, cfg.Ledger)
	products := rg.Group("/products")
	products.GET("/low-stock", productHandler.LowStock)
	products.GET("/:id/supplier", productHandler.Supplier)
	RegisterCRUDRoutes(products, productHandler)

	customerHandler := handlers.NewCustomerHandler(base, cfg.Ledger)
	customers := rg.Group("/customers")
	customers.GET("/:id/history", customerHandler.History)
	RegisterCRUDRoutes(customers, customerHandler)

	supplierHandler := handlers.NewSupplierHandler(base, cfg.Ledger)
	suppliers := rg.Group("/suppliers")
	suppliers.GET("/:id/products", supplierHandler.Products)
	RegisterCRUDRoutes(suppliers, supplierHandler)
}

// registerDocumentRoutes registers sale and purchase endpoints.
// Sales are immutable once posted, so they only get list, get and create.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	base := handlers.NewBaseHandler()

	saleHandler := handlers.NewSaleHandler(base, cfg.Ledger)
	sales := rg.Group("/sales")
	{
		sales.GET("", saleHandler.List)
		sales.POST("", saleHandler.Create)
		sales.GET("/:id", saleHandler.Get)
	}

	RegisterCRUDRoutes(rg.Group("/purchases"), handlers.NewPurchaseHandler(base, cfg.Ledger))
}

// registerReportRoutes registers derived view endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	reportHandler := handlers.NewReportHandler(handlers.NewBaseHandler(), cfg.Ledger)
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", reportHandler.Dashboard)
		reports.GET("/top-products", reportHandler.TopProducts)
		reports.GET("/recent-sales", reportHandler.RecentSales)
	}
}
