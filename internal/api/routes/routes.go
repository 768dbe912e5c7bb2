package routes

import (
	"usana-backend/domain"
	"usana-backend/internal/api/handlers"
	"usana-backend/internal/middleware"
	"usana-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	WasteHandler     handlers.WasteHandler
	ExpiryHandler    handlers.ExpiryHandler
	DonationHandler  handlers.DonationHandler
	FarmerHandler    handlers.FarmerHandler
	InsightHandler   handlers.InsightHandler
	NutritionHandler handlers.NutritionHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Waste()
	c.Expiry()
	c.Donations()
	c.Farmers()
	c.Disease()
	c.SupplyChain()
	c.Nutrition()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", auth, c.UserHandler.Me)
		user.Patch("/update", auth, c.UserHandler.UpdateUser)
		user.Patch("/password", auth, c.UserHandler.UpdatePassword)

		admin := c.Middleware.RequireRoles(domain.RoleAdmin)
		user.Get("", auth, admin, c.UserHandler.GetAllUsers)
		user.Patch("/:id/verify", auth, admin, c.UserHandler.VerifyUser)
		user.Patch("/:id/unverify", auth, admin, c.UserHandler.UnverifyUser)

		user.Get("/:id", auth, c.UserHandler.GetUser)
		user.Put("/:id", auth, c.UserHandler.UpdateUserByID)
		user.Delete("/:id", auth, admin, c.UserHandler.DeleteUser)
	}
}

func (c *Config) Waste() {
	waste := c.App.Group("/api/v1/waste", c.Middleware.AuthMiddleware(c.JWTService))

	waste.Get("/analytics", c.WasteHandler.GetWasteAnalytics)

	waste.Post("", c.WasteHandler.CreateWasteRecord)
	waste.Get("", c.WasteHandler.GetWasteRecords)
	waste.Get("/:id", c.WasteHandler.GetWasteRecord)
	waste.Put("/:id", c.WasteHandler.UpdateWasteRecord)
	waste.Delete("/:id", c.WasteHandler.DeleteWasteRecord)
}

func (c *Config) Expiry() {
	expiry := c.App.Group("/api/v1/expiry", c.Middleware.AuthMiddleware(c.JWTService))

	expiry.Post("/notify", c.ExpiryHandler.NotifyExpiring)

	expiry.Post("", c.ExpiryHandler.CreateExpiryItem)
	expiry.Get("", c.ExpiryHandler.GetExpiryItems)
	expiry.Put("/:id", c.ExpiryHandler.UpdateExpiryItem)
	expiry.Delete("/:id", c.ExpiryHandler.DeleteExpiryItem)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Get("/available/food", c.DonationHandler.GetAvailableFoodDonations)

	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetDonations)
	donations.Get("/:id", c.DonationHandler.GetDonation)
	donations.Put("/:id", c.DonationHandler.UpdateDonation)
	donations.Delete("/:id", c.DonationHandler.DeleteDonation)
}

func (c *Config) Farmers() {
	farmers := c.App.Group("/api/v1/farmers", c.Middleware.AuthMiddleware(c.JWTService))

	farmers.Get("/me", c.FarmerHandler.GetMyFarmerProfile)

	farmers.Post("", c.FarmerHandler.CreateFarmer)
	farmers.Get("", c.FarmerHandler.GetFarmers)
	farmers.Get("/:id", c.FarmerHandler.GetFarmer)
	farmers.Put("/:id", c.FarmerHandler.UpdateFarmer)
	farmers.Delete("/:id", c.FarmerHandler.DeleteFarmer)
	farmers.Post("/:id/yield", c.FarmerHandler.AddYield)
}

func (c *Config) Disease() {
	disease := c.App.Group("/api/v1/disease", c.Middleware.AuthMiddleware(c.JWTService))

	disease.Post("/analyze", c.InsightHandler.AnalyzeDisease)
	disease.Get("/history", c.InsightHandler.GetAnalysisHistory)
	disease.Get("/list", c.InsightHandler.GetDiseases)
	disease.Get("/:diseaseId", c.InsightHandler.GetDiseaseInfo)
	disease.Get("/:diseaseId/treatments", c.InsightHandler.GetTreatments)
}

func (c *Config) SupplyChain() {
	supplyChain := c.App.Group("/api/v1/supply-chain", c.Middleware.AuthMiddleware(c.JWTService))
	admin := c.Middleware.RequireRoles(domain.RoleAdmin)

	supplyChain.Get("/deliveries", c.InsightHandler.GetDeliveries)
	supplyChain.Get("/deliveries/:id", c.InsightHandler.GetDelivery)
	supplyChain.Put("/deliveries/:id/status", admin, c.InsightHandler.UpdateDeliveryStatus)
	supplyChain.Get("/analytics", c.InsightHandler.GetSupplyChainAnalytics)
	supplyChain.Post("/optimize-routes", admin, c.InsightHandler.OptimizeRoutes)
	supplyChain.Get("/vehicles", c.InsightHandler.GetVehicles)
	supplyChain.Get("/alerts", c.InsightHandler.GetAlerts)
}

func (c *Config) Nutrition() {
	nutrition := c.App.Group("/api/v1/nutrition", c.Middleware.AuthMiddleware(c.JWTService))

	nutrition.Post("/meal-plan", c.NutritionHandler.GenerateMealPlan)
	nutrition.Get("/local-foods", c.NutritionHandler.GetLocalFoods)
	nutrition.Get("/recommendations", c.NutritionHandler.GetRecommendations)
	nutrition.Post("/calculate-needs", c.NutritionHandler.CalculateNeeds)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
