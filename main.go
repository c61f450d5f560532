package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"lms/config"
	adminController "lms/controllers/admin"
	authController "lms/controllers/auth"
	contentController "lms/controllers/content"
	courseController "lms/controllers/course"
	userController "lms/controllers/user"
	"lms/payment"
	"lms/routers/authRoutes"
	"lms/routers/contentRoutes"
	"lms/routers/courseRoutes"
	"lms/routers/userRoutes"
	"lms/services/catalog"
	"lms/services/editor"
	"lms/services/identity"
	"lms/services/sitecontent"
	"lms/services/views"
	"lms/store"
)

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// Service objects live for the whole process and are injected explicitly
	identitySvc := identity.New(st, cfg.AdminEmail, cfg.AdminPassword)
	catalogSvc := catalog.New(st)
	contentSvc := sitecontent.New(st)
	viewsSvc := views.New(identitySvc, catalogSvc, contentSvc)
	drafts := editor.NewManager()
	gateway := payment.NewGateway(cfg.PaymentApiURL)

	authCtrl := &authController.Controller{Identity: identitySvc}
	userCtrl := &userController.Controller{Identity: identitySvc, Views: viewsSvc, Content: contentSvc}
	adminCtrl := &adminController.Controller{Identity: identitySvc}
	courseCtrl := &courseController.Controller{Catalog: catalogSvc, Gateway: gateway, Drafts: drafts}
	contentCtrl := &contentController.Controller{Content: contentSvc, UploadDir: cfg.UploadDir}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Static("/uploads", cfg.UploadDir)

	authRoutes.SetupAuthRoutes(app, authCtrl)
	userRoutes.SetupUserRoutes(app, userCtrl, adminCtrl, identitySvc)
	courseRoutes.SetupCourseRoutes(app, courseCtrl, identitySvc)
	courseRoutes.SetupAdminCourseRoutes(app, courseCtrl, identitySvc)
	contentRoutes.SetupContentRoutes(app, contentCtrl, identitySvc)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
