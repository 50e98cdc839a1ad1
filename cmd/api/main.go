package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pix-ranking/internal/handler"
	"go-pix-ranking/internal/model"
	"go-pix-ranking/internal/repository"
	"go-pix-ranking/internal/service"
	"go-pix-ranking/internal/ws"
	"go-pix-ranking/pkg/database"
	"go-pix-ranking/pkg/storage"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const uploadsDir = "./public/uploads"

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	// 2. Setup Database
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	defer database.Close(db)
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(&model.Operator{}, &model.Sale{})

	// 3. Setup WebSocket Hub for dashboard push updates
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	operatorRepo := repository.NewOperatorRepo(db)
	saleRepo := repository.NewSaleRepo(db)

	imageStore := storage.NewLocalImageStore(uploadsDir, "/uploads")

	operatorService := service.NewOperatorService(operatorRepo, saleRepo, imageStore, zapLogger)
	ingestService := service.NewIngestService(operatorRepo, saleRepo, wsHub, zapLogger)
	reportService := service.NewReportService(saleRepo)

	operatorHandler := handler.NewOperatorHandler(operatorService)
	uploadHandler := handler.NewUploadHandler(ingestService)
	salesHandler := handler.NewSalesHandler(reportService)
	reportHandler := handler.NewReportHandler(reportService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "PIX Ranking v1.0",
		BodyLimit: handler.MaxLedgerSize + 1024*1024, // ledger cap plus form overhead
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Operator profile images
	app.Static("/uploads", uploadsDir)

	// 6. Routes
	api := app.Group("/api/v1")

	// Operator directory
	api.Get("/operators", operatorHandler.GetOperators)
	api.Post("/operators", operatorHandler.CreateOperator)
	api.Get("/operators/:id", operatorHandler.GetOperator)
	api.Put("/operators/:id", operatorHandler.UpdateOperator)
	api.Delete("/operators/:id", operatorHandler.DeleteOperator)

	// Ledger ingestion
	api.Post("/upload", uploadHandler.UploadLedger)

	// Dashboard data
	api.Get("/sales", salesHandler.GetSales)

	// Reports
	api.Get("/reports/sales", reportHandler.GetSalesReport)
	api.Get("/reports/sales/export", reportHandler.ExportSalesReport)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
