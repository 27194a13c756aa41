package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/popsorte/backend/internal/config"
	mongorepo "github.com/popsorte/backend/internal/repositories/mongodb"
	"github.com/popsorte/backend/internal/utils"
	"github.com/popsorte/backend/pkg/mongodb"
)

// Imports an operator export file into MongoDB.
//
// Usage: import_csv -type recharges|tickets|results <file.csv>
func main() {
	fileType := flag.String("type", "recharges", "export type: recharges, tickets or results")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("CSV file path is required as a command line argument")
	}
	csvFilePath := flag.Arg(0)

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	mongoURI := config.GetEnv("MONGODB_URI", "")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}
	dbName := config.GetEnv("MONGODB_DATABASE", "popsorte")

	client, err := mongodb.NewClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)
	importer := utils.NewCSVImporter(
		mongorepo.NewRechargeRepository(db),
		mongorepo.NewTicketRepository(db),
		mongorepo.NewResultRepository(db),
	)

	ctx := context.Background()
	var summary *utils.ImportSummary
	switch *fileType {
	case "recharges":
		summary, err = importer.ImportRecharges(ctx, csvFilePath)
	case "tickets":
		summary, err = importer.ImportTickets(ctx, csvFilePath)
	case "results":
		summary, err = importer.ImportResults(ctx, csvFilePath)
	default:
		log.Fatalf("Unknown export type: %s", *fileType)
	}
	if err != nil {
		log.Fatalf("Failed to import data: %v", err)
	}

	log.Printf("Imported %d of %d rows (%d skipped)", summary.Imported, summary.TotalRows, summary.Skipped)
	for _, e := range summary.Errors {
		log.Printf("  %s", e)
	}
}
