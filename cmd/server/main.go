package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/youruser/posterapp/internal/api"
	"github.com/youruser/posterapp/internal/catalog"
	"github.com/youruser/posterapp/internal/util"
)

func main() {
	// Load credentials from .env (best-effort)
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Println("Warning: SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET not set; catalog search will fail")
	}

	cat := catalog.New(util.DefaultClient, clientID, clientSecret)
	srv := api.NewServer(cat)

	r := gin.Default()
	srv.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
