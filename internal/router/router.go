package router

import (
	"context"
	"time"

	"github.com/uiliamvenerio/salada-landing/internal/config"
	"github.com/uiliamvenerio/salada-landing/internal/handler"
	"github.com/uiliamvenerio/salada-landing/internal/middleware"
	"github.com/uiliamvenerio/salada-landing/internal/repository"
	"github.com/uiliamvenerio/salada-landing/internal/service"
	"github.com/uiliamvenerio/salada-landing/internal/writelog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// ctx bounds background work started here (rate limiter purge).
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := middleware.NewLimiter(cfg.RateLimitPerMinute, time.Minute)
	go limiter.RunPurge(ctx, 5*time.Minute)

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(limiter.Middleware())

	// ── Repositories ─────────────────────────────────────────────────────────
	recipeRepo := repository.NewRecipeRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	recipeCache := service.NewRecipeListCache(rdb, cfg.RecipeCacheTTL)
	recipeSvc := service.NewRecipeService(recipeRepo, recipeCache, writelog.New(rdb), cfg.RecipeAtomicWrites)
	ingredientSvc := service.NewIngredientService(ingredientRepo, recipeCache)
	organizationSvc := service.NewOrganizationService(organizationRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	recipesH := handler.NewRecipesHandler(recipeSvc)
	ingredientsH := handler.NewIngredientsHandler(ingredientSvc)
	organizationsH := handler.NewOrganizationsHandler(organizationSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", recipesH.List)
			recipes.POST("", recipesH.Create)
			recipes.GET("/incomplete", recipesH.Incomplete)
			recipes.GET("/:id", recipesH.Get)
			recipes.PUT("/:id", recipesH.Update)
			recipes.DELETE("/:id", recipesH.Delete)
		}

		ingredients := v1.Group("/ingredients")
		{
			ingredients.GET("", ingredientsH.List)
			ingredients.POST("", ingredientsH.Create)
			ingredients.GET("/:id", ingredientsH.Get)
			ingredients.PUT("/:id", ingredientsH.Update)
			ingredients.DELETE("/:id", ingredientsH.Delete)
		}

		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationsH.List)
			organizations.POST("", organizationsH.Create)
			organizations.GET("/:id", organizationsH.Get)
			organizations.PUT("/:id", organizationsH.Update)
			organizations.DELETE("/:id", organizationsH.Delete)
		}
	}

	return r
}
