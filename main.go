package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"matchpoint_server/config"
	"matchpoint_server/routes"
	"matchpoint_server/services"
	"matchpoint_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWS.Region)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	listingService := &services.ListingService{Dynamo: dynamoService}
	matchRequestService := &services.MatchRequestService{Dynamo: dynamoService, Listings: listingService}
	schedulingService := &services.SchedulingService{Dynamo: dynamoService, Listings: listingService, Requests: matchRequestService}
	messageService := &services.MessageService{Dynamo: dynamoService, Profiles: userProfileService}

	s3Service, err := services.NewS3Service(cfg.AWS.Region, cfg.AWS.S3Bucket)
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Matchpoint")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterListingRoutes(r, listingService)
	routes.RegisterMatchRequestRoutes(r, matchRequestService)
	routes.RegisterScheduledMatchRoutes(r, schedulingService)
	routes.RegisterChatRoutes(r, messageService)
	routes.RegisterS3Routes(r, s3Service)

	// Live message feed
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, corsHandler))
}
