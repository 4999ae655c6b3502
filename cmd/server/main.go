package main

import (
	"log"

	"prodiny/internal/config"
	"prodiny/internal/db"
	"prodiny/internal/router"
	"prodiny/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real deployments set env vars directly
	_ = godotenv.Load()

	cfg := config.Load()

	db.Init(cfg)
	defer db.Close()

	services.InitTokens(cfg.JWTSecret, cfg.TokenTTLMin)
	services.GetRankingService()

	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("prodiny_session", store))

	router.RegisterRoutes(r)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
