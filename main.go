package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"moodmap_server/config"
	"moodmap_server/routes"
	"moodmap_server/services"
	"moodmap_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	geocodeService := services.NewGeocodeService(cfg)
	moodService := &services.MoodService{Dynamo: dynamoService, Geocode: geocodeService, Table: cfg.MoodsTable}
	markerService := &services.MarkerService{Resolver: geocodeService}

	// Initialize the Socket.IO server for moodUpdated nudges
	socketServer := socket.NewServer()
	go socketServer.Serve()
	defer socketServer.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to MoodMap")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	r.HandleFunc("/privacy-policy", routes.PrivacyPolicyHandler).Methods("GET")

	r.Handle("/socket.io/", socketServer.Handler())

	// Register routes
	routes.RegisterMoodRoutes(r, moodService, socketServer)
	routes.RegisterMapRoutes(r, moodService, markerService)
	routes.RegisterGeocodeRoutes(r, geocodeService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
