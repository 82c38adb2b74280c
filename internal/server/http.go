package server

import (
	"github.com/gin-gonic/gin"

	"github.com/jhony29a/bliss/internal/app"
	"github.com/jhony29a/bliss/internal/config"
	"github.com/jhony29a/bliss/internal/handlers"
	"github.com/jhony29a/bliss/internal/middleware"
	"github.com/jhony29a/bliss/internal/service/account"
	"github.com/jhony29a/bliss/internal/service/discovery"
	"github.com/jhony29a/bliss/internal/service/matching"
	"github.com/jhony29a/bliss/internal/service/messaging"
	"github.com/jhony29a/bliss/internal/service/preference"
	"github.com/jhony29a/bliss/internal/service/subscription"
	"github.com/jhony29a/bliss/pkg/auth"
)

// NewRouter wires every service and handler into a gin engine.
func NewRouter(appCtx *app.AppContext, cfg *config.Config, jwtMgr *auth.JWTManager) *gin.Engine {
	if cfg.App.ENV != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	accounts := account.NewService(appCtx)
	matches := matching.NewService(appCtx)
	messages := messaging.NewService(appCtx)
	prefs := preference.NewService(appCtx)
	disc := discovery.NewService(appCtx)
	subs := subscription.NewService(appCtx)

	authH := handlers.NewAuthHandler(appCtx, accounts, jwtMgr)
	profileH := handlers.NewProfileHandler(accounts)
	matchH := handlers.NewMatchHandler(matches, disc)
	messageH := handlers.NewMessageHandler(messages)
	prefH := handlers.NewPreferenceHandler(prefs)
	subH := handlers.NewSubscriptionHandler(subs)

	router := gin.Default()

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authH.Logout)
		authGroup.GET("/session", authH.Session)
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(jwtMgr, appCtx.RedisCache))
	{
		api.GET("/users/me", profileH.Me)
		api.PUT("/users/me", profileH.UpdateMe)

		api.GET("/users/potential-matches", matchH.PotentialMatches)
		api.POST("/users/swipe", matchH.Swipe)
		api.GET("/users/matches", matchH.Matches)
		api.GET("/users/liked-you", matchH.LikedYou)
		api.GET("/users/liked-you/count", matchH.LikedYouCount)

		api.GET("/users/preferences", prefH.Get)
		api.POST("/users/preferences", prefH.Save)

		api.POST("/messages", messageH.Send)
		api.GET("/messages/:userId", messageH.Between)
		api.GET("/conversations", messageH.Conversations)

		api.GET("/subscriptions", subH.Active)
		api.POST("/subscriptions", subH.Create)
		api.POST("/subscriptions/cancel", subH.Cancel)
	}

	return router
}
