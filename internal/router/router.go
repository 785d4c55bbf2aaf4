package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/internal/api"
	"github.com/pageza/mealprep/backend/internal/middleware"
)

// Handlers groups the HTTP handlers wired into the route table.
type Handlers struct {
	Health   *api.HealthHandler
	Auth     *api.AuthHandler
	Meals    *api.MealHandler
	Plans    *api.PlanHandler
	Shopping *api.ShoppingHandler
}

// Options carries the cross-cutting pieces of the router.
type Options struct {
	Logger         *zap.Logger
	CORSOrigins    []string
	TokenValidator middleware.TokenValidator
	// WriteLimiter may be nil; writes are then not rate limited.
	WriteLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, opts Options) *gin.Engine {
	api.RegisterValidators()

	router := gin.New()
	router.Use(
		middleware.RequestLogger(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.CORS(opts.CORSOrigins),
	)

	router.GET("/health", h.Health.HealthCheck)

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", middleware.AuthMiddleware(opts.TokenValidator), h.Auth.Me)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(opts.TokenValidator))
	limitWrites := opts.WriteLimiter.RateLimitMiddleware()
	{
		meals := protected.Group("/meals")
		{
			meals.GET("", h.Meals.ListMeals)
			meals.POST("", limitWrites, h.Meals.CreateMeal)
			meals.GET("/:id", h.Meals.GetMeal)
			meals.PUT("/:id", limitWrites, h.Meals.UpdateMeal)
			meals.DELETE("/:id", h.Meals.DeleteMeal)
			meals.POST("/:id/image", limitWrites, h.Meals.UploadImage)
		}

		plans := protected.Group("/plans")
		{
			plans.GET("", h.Plans.ListPlans)
			plans.GET("/day/:date", h.Plans.PlansForDay)
			plans.POST("", limitWrites, h.Plans.CreatePlan)
			plans.DELETE("/:id", h.Plans.DeletePlan)
		}

		protected.GET("/shopping-list", h.Shopping.GetShoppingList)
	}

	return router
}
