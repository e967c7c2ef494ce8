package routes

import (
	"net/http"

	"invite_studio/internal/adapter/http/handlers"
	"invite_studio/internal/adapter/http/middleware"
	"invite_studio/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const PathAPI = "/api"

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Upload   *handlers.UploadHandler
	Template *handlers.TemplateHandler
	Project  *handlers.ProjectHandler
	Payment  *handlers.PaymentHandler
}

type Options struct {
	JWTSecret string
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Log       *zap.Logger
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, opts.Metrics, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}
	addPingRoutes(&router.RouterGroup)

	auth := middleware.Auth(opts.JWTSecret, log)
	admin := middleware.RequireAdmin(log)
	api := router.Group(PathAPI)
	addUploadRoutes(api, auth, h.Upload)
	addTemplateRoutes(api, auth, admin, h.Template)
	addProjectRoutes(api, auth, h.Project, h.Payment)
	addPaymentRoutes(api, auth, h.Payment)
	return router
}

// WithCORS wraps the engine with CORS handling for the browser client.
func WithCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           600,
	}).Handler(handler)
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics, log *zap.Logger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics(m))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[http][router] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
