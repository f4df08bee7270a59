package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// WeatherHandlers proxies weather lookups
type WeatherHandlers struct {
	weatherSvc domain.WeatherService
}

// NewWeatherHandlers creates new weather handlers
func NewWeatherHandlers(weatherSvc domain.WeatherService) *WeatherHandlers {
	return &WeatherHandlers{weatherSvc: weatherSvc}
}

// Current returns formatted current conditions for a location
func (h *WeatherHandlers) Current(c *gin.Context) {
	weather, err := h.weatherSvc.Current(c.Request.Context(), c.Param("location"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, weather)
}

// Forecast returns a 5-day forecast for a location
func (h *WeatherHandlers) Forecast(c *gin.Context) {
	forecast, err := h.weatherSvc.Forecast(c.Request.Context(), c.Param("location"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

func (h *WeatherHandlers) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrWeatherNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Weather API key not configured"})
	case errors.Is(err, domain.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
	case errors.Is(err, domain.ErrWeatherAPIKeyInvalid):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid weather API key"})
	default:
		log.Printf("WEATHER_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Weather service error"})
	}
}
