package main

import (
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Tomasdfgh/Avalon/internal/config"
	"github.com/Tomasdfgh/Avalon/internal/handlers"
	"github.com/Tomasdfgh/Avalon/internal/registry"
)

func CreateServer(cfg config.Config, handler *handlers.RoomHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestLogger())
	r.Use(handlers.NewRateLimiter(cfg.RatePerSecond, cfg.RateBurst).Middleware())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(cfg.AllowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden-origin"})
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin"},
	}))

	handlers.RegisterRoutes(r, handler)
	return r
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	cfg := config.Load()

	reg := registry.New(cfg.StaleTimeout)
	handler := handlers.NewRoomHandler(reg)

	r := CreateServer(cfg, handler)

	log.Info().Str("port", cfg.Port).Msg("lobby service listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
