package routes

import (
	"CareDesk/cache"
	"CareDesk/config"
	"CareDesk/controllers"
	"CareDesk/handlers"
	"CareDesk/middlewares"
	"CareDesk/repositories"
	"CareDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.example.com", "https://example-dev.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	patientRepo := repositories.NewPatientRepository(cache)
	doctorRepo := repositories.NewDoctorRepository(cache)
	bedRepo := repositories.NewBedRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	medicineRepo := repositories.NewMedicineRepository(cache)
	diagnosisRepo := repositories.NewDiagnosisRepository(cache)
	userRepo := repositories.NewUserRepository(db, cache)

	// Initialize services. The allocation service sits between the patient
	// and bed services so every bed-affecting mutation is reconciled.
	allocationService := services.NewAllocationService(patientRepo, bedRepo, doctorRepo)
	directoryService := services.NewDirectoryService(patientRepo, bedRepo, doctorRepo, appointmentRepo)
	patientService := services.NewPatientService(patientRepo, allocationService)
	doctorService := services.NewDoctorService(doctorRepo)
	bedService := services.NewBedService(bedRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	medicineService := services.NewMedicineService(medicineRepo)
	diagnosisService := services.NewDiagnosisService(diagnosisRepo)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	patientHandler := handlers.NewPatientHandler(patientService, directoryService)
	doctorHandler := handlers.NewDoctorHandler(doctorService, directoryService)
	bedHandler := handlers.NewBedHandler(bedService, allocationService, directoryService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, directoryService)
	medicineHandler := handlers.NewMedicineHandler(medicineService)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService)
	dashboardHandler := handlers.NewDashboardHandler(directoryService)
	authHandler := handlers.NewAuthHandler(userService)

	// Register routes
	controllers.SetupRecordRoutes(
		router,
		patientHandler,
		doctorHandler,
		bedHandler,
		appointmentHandler,
		medicineHandler,
		diagnosisHandler,
		dashboardHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
