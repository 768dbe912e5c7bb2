package config

import (
	"os"
	"time"

	"usana-backend/internal/api/handlers"
	"usana-backend/internal/api/routes"
	"usana-backend/internal/middleware"
	"usana-backend/internal/utils"
	"usana-backend/internal/utils/mailing"
	"usana-backend/internal/utils/storage"
	"usana-backend/pkg/donation"
	"usana-backend/pkg/expiry"
	"usana-backend/pkg/farmer"
	"usana-backend/pkg/insight"
	"usana-backend/pkg/jwt"
	"usana-backend/pkg/nutrition"
	"usana-backend/pkg/payment"
	"usana-backend/pkg/user"
	"usana-backend/pkg/waste"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const diseaseAnalysisDelay = 3 * time.Second

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Nairobi",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	wasteRepository := waste.NewWasteRepository(db)
	expiryRepository := expiry.NewExpiryRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	farmerRepository := farmer.NewFarmerRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	paymentService := payment.NewPaymentService()
	userService := user.NewUserService(userRepository, jwtService)
	wasteService := waste.NewWasteService(wasteRepository)
	expiryService := expiry.NewExpiryService(expiryRepository, userRepository, mailing.SendMail)
	donationService := donation.NewDonationService(donationRepository, userRepository, paymentService, s3)
	farmerService := farmer.NewFarmerService(farmerRepository)
	insightService := insight.NewInsightService(insight.NewDataset(), diseaseAnalysisDelay)
	nutritionService := nutrition.NewNutritionService(nutrition.NewDataset())

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	wasteHandler := handlers.NewWasteHandler(wasteService, validator)
	expiryHandler := handlers.NewExpiryHandler(expiryService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	farmerHandler := handlers.NewFarmerHandler(farmerService, validator)
	insightHandler := handlers.NewInsightHandler(insightService, validator)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		WasteHandler:     wasteHandler,
		ExpiryHandler:    expiryHandler,
		DonationHandler:  donationHandler,
		FarmerHandler:    farmerHandler,
		InsightHandler:   insightHandler,
		NutritionHandler: nutritionHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
