package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"agent_review_go_backend/cmd/api/config"
	"agent_review_go_backend/internal/api"
	"agent_review_go_backend/internal/broker"
	"agent_review_go_backend/internal/services"
	"agent_review_go_backend/internal/store"
	"agent_review_go_backend/internal/wsocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.NewConfig()
	ctx := context.Background()

	// The analysis collaborator is optional: without a key the service
	// answers with its configured placeholder instead of failing startup.
	var generator services.TextGenerator
	genaiAPIKey := os.Getenv("GOOGLE_AI_STUDIO_API_KEY")
	if genaiAPIKey != "" {
		genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(genaiAPIKey))
		if err != nil {
			log.Fatalf("Failed to create GenAI client: %v", err)
		}
		defer genaiClient.Close()
		generator = services.NewGeminiGenerator(genaiClient, cfg.AnalysisModel)
	} else {
		log.Println("GOOGLE_AI_STUDIO_API_KEY is not set, paper analysis will be degraded")
	}

	events := broker.NewBroker()
	ledger := store.NewLedger(store.SeedPapers(), store.SeedUsers(), cfg.IncentivePoints, events)

	analysisService := services.NewAnalysisService(generator, cfg.AnalysisTimeout)
	reportService := services.NewReportService()
	citationService := services.NewCitationService()

	r := gin.Default()

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173" // Default to your local frontend
	}

	// CORS middleware configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// WebSocket upgrader
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true // TODO: Implement a more secure check in production
		},
	}

	wsHandler := wsocket.NewHandler(events, upgrader)

	api.SetupRoutes(r, ledger, analysisService, reportService, citationService, cfg.RateLimitRPS, cfg.SimulatedLatency)

	r.GET("/ws", func(c *gin.Context) {
		wsHandler.HandleWebSocket(c.Writer, c.Request)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
