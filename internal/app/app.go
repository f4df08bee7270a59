package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/config"
	httpx "github.com/dianadeliz/vva-dsm-capstoneproject/internal/http"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/http/handlers"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	userH := handlers.NewUserHandlers(c.AuthSvc, c.ChatRepo)
	weatherH := handlers.NewWeatherHandlers(c.WeatherSvc)
	translationH := handlers.NewTranslationHandlers(c.TranslationSvc)
	chatH := handlers.NewChatHandlers(c.AIChatSvc)

	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.UserRepo)

	r := httpx.BuildRouter(authH, userH, weatherH, translationH, chatH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
