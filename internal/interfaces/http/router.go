package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"linkdeck/internal/application/social"
	"linkdeck/internal/infrastructure/auth"
	"linkdeck/internal/infrastructure/cache"
	"linkdeck/internal/infrastructure/config"
	"linkdeck/internal/infrastructure/graph"
	"linkdeck/internal/infrastructure/repository"
	"linkdeck/internal/infrastructure/storage"
	"linkdeck/internal/interfaces/http/handlers"
	"linkdeck/internal/interfaces/http/middleware"
	"linkdeck/internal/interfaces/http/routes"
	"linkdeck/internal/shared/logger"

	_ "linkdeck/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	socialHandler  *handlers.SocialAccountHandler
	healthHandler  *handlers.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	accountRepo := repository.NewInstagramAccountRepository(db)
	channelRepo := repository.NewYoutubeChannelRepository(db)

	graphClient := graph.NewClient(graph.Config{
		AppID:     cfg.OAuth.Facebook.AppID,
		AppSecret: cfg.OAuth.Facebook.AppSecret,
		Version:   cfg.OAuth.Facebook.GraphAPIVersion,
	}, log.Named("graph"))

	mediaStore, err := storage.NewS3MediaStore(cfg.Storage, log.Named("storage"))
	if err != nil {
		return nil, err
	}

	oauthClient := auth.NewFacebookOAuthClient(auth.FacebookOAuthConfig{
		AppID:       cfg.OAuth.Facebook.AppID,
		AppSecret:   cfg.OAuth.Facebook.AppSecret,
		RedirectURL: cfg.OAuth.Facebook.RedirectURL,
	})

	stateStore := cache.NewOAuthStateStore(redisClient, time.Duration(cfg.Dashboard.OAuthStateTTLSeconds)*time.Second)
	viewCache := cache.NewDashboardCache(redisClient, time.Duration(cfg.Dashboard.CacheTTLSeconds)*time.Second, log.Named("cache"))

	socialService := social.NewService(
		accountRepo, channelRepo,
		graphClient, mediaStore, oauthClient, stateStore, viewCache,
		log.Named("social"),
	)

	socialHandler := handlers.NewSocialAccountHandler(socialService, log.Named("http"))
	healthHandler := handlers.NewHealthHandler(db, redisClient)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log.Named("auth"))

	return &Router{
		engine:         engine,
		socialHandler:  socialHandler,
		healthHandler:  healthHandler,
		authMiddleware: authMiddleware,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestLogger(r.logger.Named("request")))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	api := r.engine.Group("/api/v1")
	routes.SetupSocialRoutes(api, &routes.SocialRouteConfig{
		SocialHandler:  r.socialHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
