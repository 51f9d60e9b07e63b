package routes

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	_ "caza_backend/docs"
	"caza_backend/internal/adapter/http/handlers"
	"caza_backend/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownGrace = 10 * time.Second

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Payments   *handlers.PaymentHandler
	Entities   *handlers.EntityHandler
	Dispatch   *handlers.DispatchHandler
	Inspection *handlers.InspectionHandler
}

func NewHandlers(c *bootstrap.Container) Handlers {
	return Handlers{
		Payments:   handlers.NewPaymentHandler(c.Reconciliation),
		Entities:   handlers.NewEntityHandler(c.Listing),
		Dispatch:   handlers.NewDispatchHandler(c.Notification),
		Inspection: handlers.NewInspectionHandler(c.Inspection),
	}
}

// NewRouter mounts the API under /v1 plus the operational endpoints.
func NewRouter(h Handlers, gatherer prometheus.Gatherer, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, allowedOrigins)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, h.Payments)
	addEntityRoutes(v1, h.Entities, h.Dispatch)
	addInspectionRoutes(v1, h.Inspection)

	addLegacyRoutes(router, h)
	return router
}

// Run serves router on port until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, router *gin.Engine, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warnf("[routes] shutdown err=%v", err)
		}
	}()

	log.Printf("[routes] listening port=%s", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func setMiddlewares(router *gin.Engine, allowedOrigins []string) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("[routes] recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors(allowedOrigins))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("[routes] request")
	}
}

// cors lets the staff frontend call the API with credentials.
func cors(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			allowed[o] = struct{}{}
		}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Add("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
