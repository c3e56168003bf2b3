package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vitalog/vitalog-server/internal/api/http/handler"
	"github.com/vitalog/vitalog-server/internal/api/http/middleware"
	"github.com/vitalog/vitalog-server/internal/logger"
)

// Router assembles the HTTP routes and middleware for the service.
type Router struct {
	authService       handler.AuthService
	profileService    handler.ProfileService
	entryService      handler.EntryService
	suggestionService handler.SuggestionService
	tokenParser       middleware.TokenParser
	logger            *logger.Logger
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	profileService handler.ProfileService,
	entryService handler.EntryService,
	suggestionService handler.SuggestionService,
	tokenParser middleware.TokenParser,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:       authService,
		profileService:    profileService,
		entryService:      entryService,
		suggestionService: suggestionService,
		tokenParser:       tokenParser,
		logger:            logger,
	}
}

// Register builds the gin engine with all routes and middleware attached.
// Everything under /api except /api/auth requires a bearer token.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.Logging(r.logger))

	authHandler := handler.NewAuth(r.authService, r.logger)
	profileHandler := handler.NewProfile(r.profileService, r.logger)
	entryHandler := handler.NewEntry(r.entryService, r.logger)
	suggestionHandler := handler.NewSuggestion(r.suggestionService, r.logger)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := api.Group("", middleware.Authenticate(r.tokenParser, r.logger))

	profile := protected.Group("/profile")
	profile.GET("", profileHandler.GetProfile)
	profile.POST("", profileHandler.CompleteProfile)
	profile.DELETE("/delete", authHandler.DeleteAccount)

	health := protected.Group("/health")
	health.POST("/daily-entry", entryHandler.SubmitEntry)
	health.GET("/daily-entries", entryHandler.ListEntries)
	health.POST("/suggestion", suggestionHandler.RequestSuggestion)

	return engine
}
