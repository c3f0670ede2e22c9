package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
	"github.com/raushan1895/resort360/internal/application"
	"github.com/raushan1895/resort360/internal/config"
	"github.com/raushan1895/resort360/internal/domain"
	"github.com/raushan1895/resort360/internal/email"
	"github.com/raushan1895/resort360/internal/infrastructure/repository"
	handlers "github.com/raushan1895/resort360/internal/interfaces/http"
	"github.com/raushan1895/resort360/internal/scheduler"
	services "github.com/raushan1895/resort360/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil
	}

	// Users and sessions
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	loginLimiter := application.NewRateLimiter(15*time.Minute, 5)
	userService := application.NewUserService(userRepo, sessionRepo, loginLimiter)
	userHandler := handlers.NewUserHandler(userService)

	// Rooms
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	roomService := application.NewRoomService(roomRepo, bookingRepo)
	roomHandler := handlers.NewRoomHandler(roomService)

	// Service catalog
	serviceRepo := repository.NewServiceRepository(db)
	catalogService := application.NewCatalogService(serviceRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Bookings
	paymentRepo := repository.NewPaymentRepository(db)
	bookingService := application.NewBookingService(bookingRepo, roomRepo, userRepo, paymentRepo, serviceRepo, emailClient)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Events
	eventRepo := repository.NewEventRepository(db)
	eventService := application.NewEventService(eventRepo)
	eventHandler := handlers.NewEventHandler(eventService)

	// Banquets
	banquetRepo := repository.NewBanquetRepository(db)
	banquetService := application.NewBanquetService(banquetRepo, userRepo)
	banquetHandler := handlers.NewBanquetHandler(banquetService)

	// Reviews
	reviewRepo := repository.NewReviewRepository(db)
	reviewService := application.NewReviewService(reviewRepo, bookingRepo)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Inquiries
	inquiryRepo := repository.NewInquiryRepository(db)
	inquiryService := application.NewInquiryService(inquiryRepo, emailClient, cfg.StaffEmail)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)

	// Reports
	reportService := application.NewReportService(bookingRepo, roomRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	// Room image gallery backed by S3
	var galleryHandler *handlers.GalleryHandler
	s3Service, err := services.NewS3Service()
	if err != nil {
		log.Printf("Warning: S3 initialization failed, image uploads disabled: %v", err)
	} else {
		galleryService := application.NewGalleryService(s3Service, roomRepo)
		galleryHandler = handlers.NewGalleryHandler(galleryService)
	}

	auth := handlers.RequireAuth(userService)

	api := app.Group("/api")

	// Accounts
	users := api.Group("/users")
	users.Post("/register", userHandler.Register)
	users.Post("/login", userHandler.Login)
	users.Post("/logout", auth, userHandler.Logout)
	users.Get("/me", auth, userHandler.Me)
	users.Get("/", auth, handlers.RequirePermission(domain.PermManageUsers), userHandler.ListUsers)
	users.Patch("/:id/role", auth, handlers.RequirePermission(domain.PermManageUsers), userHandler.UpdateRole)

	// Rooms, pricing and maintenance
	manageRooms := handlers.RequirePermission(domain.PermManageRooms)
	rooms := api.Group("/rooms")
	rooms.Get("/", roomHandler.GetAllRooms)
	rooms.Get("/types", roomHandler.GetRoomTypes)
	rooms.Get("/available", roomHandler.GetAvailableRooms)
	rooms.Get("/blocked-dates", roomHandler.GetBlockedDates)
	rooms.Post("/maintenance/bulk", auth, manageRooms, roomHandler.ScheduleBulkMaintenance)
	rooms.Get("/:id", roomHandler.GetRoomByID)
	rooms.Get("/:id/price", roomHandler.GetCurrentPrice)
	rooms.Post("/", auth, manageRooms, roomHandler.CreateRoom)
	rooms.Put("/:id", auth, manageRooms, roomHandler.UpdateRoom)
	rooms.Post("/:id/seasonal-pricing", auth, manageRooms, roomHandler.AddSeasonalPricing)
	rooms.Put("/:id/seasonal-pricing/:pricingId", auth, manageRooms, roomHandler.UpdateSeasonalPricing)
	rooms.Delete("/:id/seasonal-pricing/:pricingId", auth, manageRooms, roomHandler.DeleteSeasonalPricing)
	rooms.Post("/:id/discounts", auth, manageRooms, roomHandler.AddDiscount)
	rooms.Put("/:id/discounts/:discountId", auth, manageRooms, roomHandler.UpdateDiscount)
	rooms.Delete("/:id/discounts/:discountId", auth, manageRooms, roomHandler.DeleteDiscount)
	rooms.Post("/:id/maintenance", auth, manageRooms, roomHandler.ScheduleMaintenance)
	rooms.Post("/:id/maintenance/:windowId/complete", auth, manageRooms, roomHandler.CompleteMaintenance)
	if galleryHandler != nil {
		rooms.Post("/:id/images", auth, manageRooms, galleryHandler.UploadRoomImage)
	}

	// Bookings
	manageBookings := handlers.RequirePermission(domain.PermManageBookings)
	bookings := api.Group("/bookings")
	bookings.Post("/", bookingHandler.CreateBooking)
	bookings.Post("/quote", bookingHandler.Quote)
	bookings.Post("/verify-availability", bookingHandler.VerifyAvailability)
	bookings.Get("/range", auth, manageBookings, bookingHandler.GetBookingsInRange)
	bookings.Get("/reference/:reference", bookingHandler.GetBookingByReference)
	bookings.Get("/guest/:guestId", auth, bookingHandler.GetGuestBookings)
	bookings.Get("/:id", auth, bookingHandler.GetBookingByID)
	bookings.Patch("/:id/status", auth, manageBookings, bookingHandler.UpdateStatus)
	bookings.Post("/:id/cancel", auth, bookingHandler.CancelBooking)
	bookings.Post("/:id/confirm", auth, manageBookings, bookingHandler.ConfirmBooking)
	bookings.Post("/:id/confirm-payment", auth, manageBookings, bookingHandler.ConfirmPayment)
	bookings.Get("/:id/payments", auth, manageBookings, bookingHandler.GetPayments)
	bookings.Post("/:id/services", auth, bookingHandler.AttachServices)

	// Events
	manageEvents := handlers.RequirePermission(domain.PermManageEvents)
	events := api.Group("/events")
	events.Get("/", eventHandler.GetAllEvents)
	events.Get("/:id", eventHandler.GetEventByID)
	events.Post("/", auth, manageEvents, eventHandler.CreateEvent)
	events.Put("/:id", auth, manageEvents, eventHandler.UpdateEvent)
	events.Patch("/:id/status", auth, manageEvents, eventHandler.UpdateStatus)

	// Banquets
	banquets := api.Group("/banquets")
	banquets.Get("/", auth, manageEvents, banquetHandler.GetAllBanquets)
	banquets.Get("/host/:hostId", auth, banquetHandler.GetHostBanquets)
	banquets.Get("/:id", auth, banquetHandler.GetBanquetByID)
	banquets.Post("/", auth, banquetHandler.RequestBanquet)
	banquets.Patch("/:id/status", auth, manageEvents, banquetHandler.UpdateStatus)

	// Reviews
	reviews := api.Group("/reviews")
	reviews.Get("/", reviewHandler.ListReviews)
	reviews.Get("/averages", reviewHandler.GetAverageScores)
	reviews.Get("/booking/:bookingId", reviewHandler.GetByBooking)
	reviews.Get("/guest/:guestId", auth, reviewHandler.GetGuestReviews)
	reviews.Post("/", auth, reviewHandler.CreateReview)

	// Contact inquiries
	inquiries := api.Group("/inquiries")
	inquiries.Post("/", inquiryHandler.Create)
	inquiries.Get("/", auth, manageBookings, inquiryHandler.List)
	inquiries.Patch("/:id/status", auth, manageBookings, inquiryHandler.UpdateStatus)

	// Service catalog
	catalog := api.Group("/services")
	catalog.Get("/", catalogHandler.GetAllServices)
	catalog.Get("/:id", catalogHandler.GetServiceByID)

	// Reports
	reports := api.Group("/reports")
	reports.Get("/occupancy", auth, handlers.RequirePermission(domain.PermViewReports), reportHandler.Occupancy)

	// Nightly cleanup of bookings, maintenance windows and sessions
	housekeeping := scheduler.NewHousekeepingScheduler(bookingRepo, roomRepo, sessionRepo)
	housekeeping.Start()
	defer housekeeping.Stop()

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
