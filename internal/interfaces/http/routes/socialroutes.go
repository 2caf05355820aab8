package routes

import (
	"github.com/gin-gonic/gin"

	"linkdeck/internal/interfaces/http/handlers"
	"linkdeck/internal/interfaces/http/middleware"
)

type SocialRouteConfig struct {
	SocialHandler  *handlers.SocialAccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupSocialRoutes(rg *gin.RouterGroup, config *SocialRouteConfig) {
	social := rg.Group("/social")
	{
		// The picker callback is hit by the browser redirect from Facebook and
		// carries no bearer token; the one-time state token authenticates it.
		social.GET("/instagram/callback", config.SocialHandler.InstagramCallback)

		authed := social.Group("")
		authed.Use(config.AuthMiddleware.RequireAuth())
		{
			authed.GET("/accounts", config.SocialHandler.ListLinkedAccounts)

			authed.GET("/instagram/connect", config.SocialHandler.StartInstagramConnect)
			authed.POST("/instagram/accounts", config.SocialHandler.ConnectInstagramAccount)
			authed.GET("/instagram/accounts/:businessAccountID/publishing-limit", config.SocialHandler.GetPublishingLimit)
			authed.DELETE("/instagram/accounts/:businessAccountID", config.SocialHandler.DisconnectInstagramAccount)

			authed.POST("/youtube/channels", config.SocialHandler.ConnectYoutubeChannel)
			authed.DELETE("/youtube/channels/:channelID", config.SocialHandler.DisconnectYoutubeChannel)
		}
	}
}
