package router

import (
	"github.com/gin-gonic/gin"

	"github.com/docspot/booking-api/internal/handler"
	adminHandler "github.com/docspot/booking-api/internal/handler/admin"
	doctorHandler "github.com/docspot/booking-api/internal/handler/doctor"
	"github.com/docspot/booking-api/internal/handler/metrics"
	userHandler "github.com/docspot/booking-api/internal/handler/user"
	"github.com/docspot/booking-api/internal/middleware"
)

type Router struct {
	engine  *gin.Engine
	auth    *middleware.AuthMiddleware
	userH   *userHandler.Handler
	doctorH *doctorHandler.Handler
	adminH  *adminHandler.Handler
	metrics *metrics.Handler
}

type Config struct {
	RateLimit  middleware.RateLimiterConfig
	CORSConfig middleware.CORSConfig
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	userH *userHandler.Handler,
	doctorH *doctorHandler.Handler,
	adminH *adminHandler.Handler,
	metricsH *metrics.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(config.CORSConfig),
		middleware.NewRateLimiter(config.RateLimit).RateLimit(),
		metricsH.Middleware(),
	)

	return &Router{
		engine:  engine,
		auth:    auth,
		userH:   userH,
		doctorH: doctorH,
		adminH:  adminH,
		metrics: metricsH,
	}
}

func (r *Router) Setup() {
	r.engine.GET("/health", handler.Health)
	r.engine.GET("/metrics", r.metrics.Handler())

	api := r.engine.Group("/api")
	r.userH.RegisterRoutes(api, r.auth)
	r.doctorH.RegisterRoutes(api, r.auth)
	r.adminH.RegisterRoutes(api, r.auth)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
