package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"catalog/internal/handlers"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "catalog.db")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "catalog")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	dbDriver := viper.GetString("DB_DRIVER")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize Storage Backend ---
	// The repositories are interfaces; which implementation backs them is
	// purely a deployment choice.
	var (
		sellerRepo   repositories.SellerRepository
		categoryRepo repositories.CategoryRepository
		productRepo  repositories.ProductRepository
	)

	switch dbDriver {
	case "sqlite", "postgres":
		var dialector gorm.Dialector
		if dbDriver == "postgres" {
			dialector = postgres.Open(viper.GetString("DB_DSN"))
		} else {
			dialector = sqlite.Open(viper.GetString("DB_DSN"))
		}

		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to %s database: %v", dbDriver, err)
		}
		if err := db.AutoMigrate(&models.Seller{}, &models.Category{}, &models.Product{}); err != nil {
			log.Fatalf("Failed to auto-migrate database: %v", err)
		}

		sellerRepo = repositories.NewGORMSellerRepository(db)
		categoryRepo = repositories.NewGORMCategoryRepository(db)
		productRepo = repositories.NewGORMProductRepository(db)

	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(viper.GetString("MONGO_URI")))
		if err != nil {
			cancel()
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			cancel()
			log.Fatalf("Failed to ping MongoDB: %v", err)
		}
		cancel()
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()

		mongoDB := client.Database(viper.GetString("MONGO_DB"))
		sellerRepo = repositories.NewMongoSellerRepository(mongoDB)
		categoryRepo = repositories.NewMongoCategoryRepository(mongoDB)
		productRepo = repositories.NewMongoProductRepository(mongoDB)

	case "memory":
		sellerRepo = repositories.NewMockSellerRepository()
		categoryRepo = repositories.NewMockCategoryRepository()
		productRepo = repositories.NewMockProductRepository()

	default:
		log.Fatalf("Unknown DB_DRIVER %q (want sqlite, postgres, mongo or memory)", dbDriver)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Catalog change events are a side channel; an empty RABBITMQ_URL simply
	// disables them.
	var mqClient *rabbitmq.Client
	var publisher services.EventPublisher
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; catalog events disabled")
	}

	// --- Initialize Services ---
	sellerService := services.NewSellerService(sellerRepo, publisher)
	categoryService := services.NewCategoryService(categoryRepo, publisher)
	productService := services.NewProductService(productRepo, publisher)

	// --- Initialize Handlers ---
	sellerHandler := handlers.NewSellerHandler(sellerService, productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService, sellerService, categoryService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Welcome to Products API",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")
	sellerHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Logs every catalog change delivery. Downstream systems would hang their
	// own consumers off the same queue.
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for catalog events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received catalog event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeCatalogEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
