package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reelratings/movie-review-api/internal/api/handler"
	"github.com/reelratings/movie-review-api/internal/api/middleware"
	"github.com/reelratings/movie-review-api/internal/core/domain"
	"github.com/reelratings/movie-review-api/internal/core/service"
	mongorepo "github.com/reelratings/movie-review-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/reelratings/movie-review-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/reelratings/movie-review-api/internal/infrastructure/http/handlers"
	"github.com/reelratings/movie-review-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	log := logger.Get()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("moviereview"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	movieRepo := mongorepo.NewMovieRepository(db)
	reviewRepo := mongorepo.NewReviewRepository(db)
	movieCache := redisinfra.NewMovieCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL, log)
	movieService := service.NewMovieService(movieRepo, reviewRepo, movieCache, log)
	reviewService := service.NewReviewService(reviewRepo, movieRepo, userRepo, log)
	userService := service.NewUserService(userRepo, reviewRepo, log)
	seedService := service.NewSeedService(userRepo, movieRepo, reviewRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	userHandler := handler.NewUserHandler(userService)
	seedHandler := handler.NewSeedHandler(seedService)

	authn := middleware.Auth(jwtSecret, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	authenticated := middleware.RBAC()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Movie catalog: public reads, admin writes ---
	e.GET("/movies", movieHandler.List)
	e.GET("/movies/:id", movieHandler.Get)
	e.POST("/movies", movieHandler.Create, authn, adminOnly)
	e.PATCH("/movies/:id", movieHandler.Update, authn, adminOnly)
	e.DELETE("/movies/:id", movieHandler.Delete, authn, adminOnly)

	// --- Reviews: public reads, owner-scoped writes ---
	e.GET("/reviews", reviewHandler.List)
	e.GET("/reviews/:id", reviewHandler.Get)
	e.GET("/reviews/movie/:movieId", reviewHandler.ListByMovie)
	e.GET("/reviews/user/:userId", reviewHandler.ListByUser)
	e.POST("/reviews", reviewHandler.Create, authn, authenticated)
	e.POST("/reviews/movie/:movieId", reviewHandler.CreateForMovie, authn, authenticated)
	e.PATCH("/reviews/:id", reviewHandler.Update, authn, authenticated)
	e.DELETE("/reviews/:id", reviewHandler.Delete, authn, authenticated)

	// --- User administration: admin only ---
	e.GET("/users/:id", userHandler.Get, authn, adminOnly)
	e.PATCH("/users/:id/roles", userHandler.UpdateRoles, authn, adminOnly)
	e.PATCH("/users/:id/active", userHandler.SetActive, authn, adminOnly)
	e.DELETE("/users/:id", userHandler.Delete, authn, adminOnly)

	// --- Seed ---
	e.POST("/seed", seedHandler.Run)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
