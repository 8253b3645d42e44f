package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"recordapi/controllers"
	"recordapi/services"
	"recordapi/utils"
)

// Server wraps the router and the controller wiring.
type Server struct {
	router     *mux.Router
	controller *controllers.Controller
	port       string
}

// NewServer creates a new server instance backed by the given store.
func NewServer(store services.RecordStore, port string) *Server {
	return &Server{
		router:     mux.NewRouter(),
		controller: controllers.NewController(store),
		port:       port,
	}
}

// setupRoutes configures all endpoints.
func (s *Server) setupRoutes() {
	// Envelope protocol endpoint
	s.router.HandleFunc("/mcp", s.controller.MCPHandler).Methods("POST")

	// REST surface
	s.router.HandleFunc("/", s.controller.IndexHandler).Methods("GET")
	s.router.HandleFunc("/get_data", s.controller.GetDataHandler).Methods("GET")
	s.router.HandleFunc("/add_row", s.controller.AddRowHandler).Methods("POST")
	s.router.HandleFunc("/analytics", s.controller.AnalyticsHandler).Methods("GET")
	s.router.HandleFunc("/data-quality", s.controller.DataQualityHandler).Methods("GET")
	s.router.HandleFunc("/export/{format}", s.controller.ExportHandler).Methods("GET")
	s.router.HandleFunc("/health", s.controller.HealthHandler).Methods("GET")
}

// Start configures and starts the HTTP server.
func (s *Server) Start() error {
	s.setupRoutes()

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(s.router)

	if !strings.HasPrefix(s.port, ":") {
		s.port = ":" + s.port
	}

	log.Printf("Server starting on port %s", s.port)
	return http.ListenAndServe(s.port, handler)
}

// selectStore connects to the Google Sheets backend, falling back to the
// in-memory store when the sheet is unreachable at startup.
func selectStore(cfg *utils.Config) services.RecordStore {
	if cfg.UseMemoryStore {
		log.Printf("In-memory store forced via USE_MEMORY_STORE")
		return services.NewMemoryStore()
	}

	store, err := services.NewSheetsStore(context.Background(),
		cfg.GoogleCredentialsFile, cfg.SpreadsheetID, cfg.SheetName)
	if err != nil {
		log.Printf("Google Sheets not available (%v), falling back to in-memory store", err)
		return services.NewMemoryStore()
	}

	log.Printf("Connected to Google Sheets spreadsheet %s (%s)", cfg.SpreadsheetID, cfg.SheetName)
	return store
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using system environment variables only")
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	server := NewServer(selectStore(cfg), cfg.Port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
