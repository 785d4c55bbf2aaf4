package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/mealprep/backend/config"
	"github.com/pageza/mealprep/backend/internal/api"
	"github.com/pageza/mealprep/backend/internal/middleware"
	"github.com/pageza/mealprep/backend/internal/router"
	"github.com/pageza/mealprep/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	redis  *redis.Client
	logger *zap.Logger
}

// New wires services, handlers and routes. redisClient and store may be nil,
// which turns off write rate limiting and image uploads respectively.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store service.ObjectStore, logger *zap.Logger) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL, logger)
	mealService := service.NewMealService(db, logger)
	planService := service.NewPlanService(db, logger)
	shoppingService := service.NewShoppingService(planService, logger)
	imageService := service.NewImageService(store, mealService, logger)

	if store == nil {
		logger.Info("image storage not configured, meal image uploads disabled")
	}
	if redisClient == nil {
		logger.Info("redis not configured, write rate limiting disabled")
	}

	engine := router.SetupRouter(router.Handlers{
		Health:   api.NewHealthHandler(db, logger),
		Auth:     api.NewAuthHandler(authService, logger),
		Meals:    api.NewMealHandler(mealService, imageService, logger),
		Plans:    api.NewPlanHandler(planService, logger),
		Shopping: api.NewShoppingHandler(shoppingService, logger),
	}, router.Options{
		Logger:         logger,
		CORSOrigins:    cfg.CORSOrigins,
		TokenValidator: authService,
		WriteLimiter:   middleware.NewMealWriteRateLimiter(redisClient, cfg.RateLimitPerHour, logger),
	})

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		redis:  redisClient,
		logger: logger,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and releases the redis client.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
