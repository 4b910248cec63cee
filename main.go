package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-backoffice/config"
	"hotel-backoffice/controllers"
	"hotel-backoffice/routes"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue or verify tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	authService := services.NewAuthService(db, secret)
	invoiceService := services.NewInvoiceService(db)
	bookingService := services.NewBookingService(db)
	roomService := services.NewRoomService(db, invoiceService, bookingService)
	inventoryService := services.NewInventoryService(db)
	checkService := services.NewInventoryCheckService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	inventoryController := controllers.NewInventoryController(inventoryService)
	checkController := controllers.NewInventoryCheckController(checkService)

	router := routes.SetupRouter(
		authService,
		authController,
		roomController,
		bookingController,
		invoiceController,
		inventoryController,
		checkController,
	)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
