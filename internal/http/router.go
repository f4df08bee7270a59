package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/http/handlers"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/http/middleware"
)

func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	wh *handlers.WeatherHandlers,
	th *handlers.TranslationHandlers,
	ch *handlers.ChatHandlers,
	jwtmw *middleware.AuthMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password/:token", ah.ResetPassword)

	authed := api.Group("/auth").Use(jwtmw.WithJWT())
	authed.GET("/me", ah.Me)
	authed.POST("/logout", ah.Logout)

	user := api.Group("/user").Use(jwtmw.WithJWT())
	user.GET("/profile", uh.GetProfile)
	user.PUT("/profile", uh.UpdateProfile)
	user.POST("/chat", uh.SaveChat)
	user.GET("/chat-sessions", uh.ListChatSessions)
	user.GET("/chat/:sessionId", uh.GetChat)
	user.DELETE("/chat/:sessionId", uh.DeleteChat)

	weather := api.Group("/weather").Use(jwtmw.WithJWT())
	weather.GET("/current/:location", wh.Current)
	weather.GET("/forecast/:location", wh.Forecast)

	translation := api.Group("/translation").Use(jwtmw.WithJWT())
	translation.POST("/translate", th.Translate)
	translation.GET("/languages", th.Languages)

	chat := api.Group("/chat").Use(jwtmw.WithJWT())
	chat.POST("/ai", ch.AI)

	return r
}
