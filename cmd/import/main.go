package main

import (
	"log"
	"os"

	"go-pix-ranking/internal/model"
	"go-pix-ranking/internal/repository"
	"go-pix-ranking/internal/service"
	"go-pix-ranking/pkg/database"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Ingests a ledger file from disk, bypassing the HTTP upload. Useful for
// backfilling an environment from an exported Sitef file.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <ledger.csv>", os.Args[0])
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// 2. Setup Database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)
	db.AutoMigrate(&model.Operator{}, &model.Sale{})

	// 3. Read the ledger file
	content, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("❌ Failed to read %s: %v", os.Args[1], err)
	}

	// 4. Run the pipeline (no hub: nothing to push to from a CLI run)
	ingestService := service.NewIngestService(
		repository.NewOperatorRepo(db),
		repository.NewSaleRepo(db),
		nil,
		zapLogger,
	)

	report, err := ingestService.ProcessLedger(string(content))
	if err != nil {
		log.Fatalf("❌ Ingestion failed: %v", err)
	}

	log.Printf("✅ Success! %d of %d rows imported (%d ignored)",
		report.ValidRecords, report.TotalProcessed, report.IgnoredRecords)
	if len(report.UnknownOperators) > 0 {
		log.Printf("Unknown operators: %v", report.UnknownOperators)
	}
}
