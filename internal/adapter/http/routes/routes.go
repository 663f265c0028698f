package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "rental_backend/docs" // generated by swag init
	"rental_backend/internal/adapter/http/middleware"
	"rental_backend/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const APIPrefix = "/v1"

// Run wires the application, serves HTTP and blocks until SIGINT or SIGTERM,
// then drains in-flight requests within the configured shutdown timeout.
func Run(cfg *config.Config, log *zap.Logger) error {
	setMode(cfg.Server.Mode)
	decimal.MarshalJSONWithoutQuotes = true

	h, cleanup, err := buildHandlers(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	router := newRouter(h, cfg.JWT.Secret, log)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     router,
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("server exited")
	return nil
}

func setMode(mode string) {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
}

func newRouter(h *appHandlers, jwtSecret string, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(APIPrefix)
	addPingRoutes(v1)

	// Everything below needs a bearer token.
	private := v1.Group("")
	private.Use(middleware.JWTAuth(jwtSecret))
	addPipelineRoutes(private, h.enquiries, h.quotations, h.salesOrders, h.contracts)
	addFinanceRoutes(private, h.invoices)
	addInventoryRoutes(private, h.inventory)
	addWarehouseRoutes(private, h.warehouse, h.inventory)
	addCRMRoutes(private, h.leads)
	addAuditRoutes(private, h.audit)

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log.Named("http")))
	router.Use(middleware.Recovery(log))
}
