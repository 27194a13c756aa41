package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/popsorte/backend/internal/config"
	mongorepo "github.com/popsorte/backend/internal/repositories/mongodb"
	"github.com/popsorte/backend/internal/services"
	"github.com/popsorte/backend/pkg/mongodb"
)

// Bootstraps an admin account for the panel.
//
// Usage: createadmin -email admin@example.com -password secret -name Admin
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Admin", "display name")
	role := flag.String("role", "admin", "account role")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("-email and -password are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB.Database)
	authService := services.NewAuthService(mongorepo.NewAdminUserRepository(db), cfg)

	user, err := authService.CreateAdmin(context.Background(), *email, *password, *name, *role)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin created: %s (%s)", user.Email, user.ID.Hex())
}
