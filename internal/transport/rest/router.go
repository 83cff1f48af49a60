package rest

import (
	"net/http"
	"pathfinder/internal/config"
	"pathfinder/internal/logger"
	"pathfinder/internal/service"
	"pathfinder/internal/transport/rest/handler"
	"pathfinder/internal/transport/rest/middleware"
	"pathfinder/internal/transport/ws"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Container holds all dependencies for the router
type Container struct {
	Server         config.ServerConfig
	AuthService    *service.AuthService
	QuizService    *service.QuizService
	ReportService  *service.ReportService
	CatalogService *service.CatalogService
	WSHub          *ws.Hub
	Logger         *logger.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	quizHandler := handler.NewQuizHandler(c.QuizService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	catalogHandler := handler.NewCatalogHandler(c.CatalogService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Server.CORSAllowedOrigins, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS first, then metrics and request logging
	r.Use(middleware.CORS(c.Server.CORSAllowedOrigins, c.Server.CORSAllowedHeaders))
	r.Use(middleware.Observe(c.Logger))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
	)).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questions", quizHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions", quizHandler.Start).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	// Respondent routes (token bound to the session in the path)
	respondentRoutes := v1.PathPrefix("/sessions/{id}").Subrouter()
	respondentRoutes.Use(authMW.RequireRespondent)

	respondentRoutes.HandleFunc("", quizHandler.Get).Methods("GET", "OPTIONS")
	respondentRoutes.HandleFunc("/answers/{questionId:[0-9]+}", quizHandler.Answer).Methods("PUT", "OPTIONS")
	respondentRoutes.HandleFunc("/analyze", quizHandler.Analyze).Methods("POST", "OPTIONS")
	respondentRoutes.HandleFunc("/report", reportHandler.GetBySession).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/catalogs", catalogHandler.Upload).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/catalogs", catalogHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/catalogs/{id}", catalogHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/catalog/stats", catalogHandler.DefaultStats).Methods("GET", "OPTIONS")

	return r
}
