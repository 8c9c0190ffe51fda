package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"eduportal/config"
	authController "eduportal/controllers/auth"
	catalogController "eduportal/controllers/catalog"
	learningController "eduportal/controllers/learning"
	profileController "eduportal/controllers/profile"
	"eduportal/database"
	"eduportal/repository"
	authRoutes "eduportal/routers/authRoutes"
	catalogRoutes "eduportal/routers/catalogRoutes"
	learningRoutes "eduportal/routers/learningRoutes"
	profileRoutes "eduportal/routers/profileRoutes"
	"eduportal/services"
	"eduportal/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	store := repository.NewGormStore(db)

	statuses, err := services.ResolveStatusSet(context.Background(), store)
	if err != nil {
		log.Fatalf("Status lookup failed: %v", err)
	}

	courseService := services.NewCourseService(store)
	materialService := services.NewMaterialService(store)
	skillService := services.NewSkillService(store)
	enrollmentService := services.NewEnrollmentService(store, statuses)
	enrollmentService.SetNotifier(utils.NewCourseNotifier())
	profileService := services.NewProfileService(store, statuses)

	utils.InitializeProgressScheduler(enrollmentService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.New(db))
	catalogRoutes.SetupCatalogRoutes(app, db, catalogController.New(courseService, materialService, skillService))
	learningRoutes.SetupLearningRoutes(app, learningController.New(enrollmentService))
	profileRoutes.SetupProfileRoutes(app, profileController.New(profileService))

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
