package main

import (
	"os"
	"os/signal"
	"sync"
	"time"

	"daansetu/config"
	"daansetu/services/marketplace/delivery"
	"daansetu/services/marketplace/repository"
	"daansetu/services/marketplace/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	timeOut := 10 * time.Second

	donationRepo := repository.NewDonationRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	donationUC := usecase.NewDonationUseCase(donationRepo, timeOut)
	requestUC := usecase.NewRequestUseCase(requestRepo, donationRepo, timeOut)

	delivery.NewDonationDelivery(app, donationUC)
	delivery.NewRequestDelivery(app, requestUC)
	delivery.NewHealthDelivery(app, db)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	db.Close()

	wg.Wait()
	log.Info("Server shut down gracefully")
}
