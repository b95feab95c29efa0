package routes

import (
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/config"
	"github.com/bloodlink/bloodlink-backend/internal/handlers"
	"github.com/bloodlink/bloodlink-backend/internal/middleware"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	keys *services.FirebaseKeyClient,
	guard *services.RoleGuard,
	userHandler *handlers.UserHandler,
	requestHandler *handlers.RequestHandler,
	blogHandler *handlers.BlogHandler,
	fundingHandler *handlers.FundingHandler,
	statsHandler *handlers.StatsHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Donation server is running")
	})

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	bearer := middleware.TokenProtected(keys)
	adminOnly := middleware.RoleRequired(guard, cfg, models.RoleAdmin)
	staffOnly := middleware.RoleRequired(guard, cfg, models.RoleAdmin, models.RoleVolunteer)

	// Registration: stricter limit, public
	api.Post("/register", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), userHandler.Register)

	// Users
	api.Get("/users", bearer, adminOnly, userHandler.List)
	api.Get("/users/:email", bearer, userHandler.GetProfile)
	api.Put("/users/:email", bearer, userHandler.UpdateProfile)
	api.Patch("/users/:id/status", bearer, staffOnly, userHandler.SetStatus)
	api.Patch("/users/:id/role", bearer, adminOnly, userHandler.SetRole)

	// Public donor search
	api.Get("/donors", userHandler.ListDonors)

	// Donation requests
	api.Post("/donation-requests", requestHandler.Create)
	api.Get("/donation-requests", requestHandler.List)
	api.Get("/donation-requests/recent/:email", bearer, requestHandler.Recent)
	api.Get("/donation-requests/by-donor/:email", requestHandler.ByRequester)
	api.Get("/donation-requests/:id", requestHandler.Get)
	api.Put("/donation-requests/:id", bearer, requestHandler.Edit)
	api.Patch("/donation-requests/confirm-donation/:id", bearer, requestHandler.ConfirmDonation)
	api.Patch("/donation-requests/:id/status", bearer, staffOnly, requestHandler.SetStatus)
	api.Delete("/donation-requests/:id", bearer, staffOnly, requestHandler.Delete)

	// Volunteer dashboard: claim-based guard is enough for a read-only list
	api.Get("/volunteer/donation-requests", bearer,
		middleware.ClaimRoleRequired(models.RoleVolunteer, models.RoleAdmin),
		requestHandler.VolunteerList)

	// Blogs: reads public, writes staff-only
	api.Post("/blogs", bearer, staffOnly, blogHandler.Create)
	api.Get("/blogs", blogHandler.List)
	api.Get("/blogs/:id", blogHandler.Get)
	api.Put("/blogs/:id", bearer, staffOnly, blogHandler.Update)
	api.Patch("/blogs/:id/status", bearer, staffOnly, blogHandler.SetStatus)
	api.Delete("/blogs/:id", bearer, staffOnly, blogHandler.Delete)

	// Admin stats
	stats := api.Group("/admin/stats", bearer, adminOnly)
	stats.Get("/donors-count", statsHandler.DonorsCount)
	stats.Get("/donation-requests", statsHandler.RequestsCount)
	stats.Get("/funds", statsHandler.TotalFunds)

	// Payments and fundings
	api.Post("/create-payment-intent", bearer, fundingHandler.CreatePaymentIntent)
	api.Post("/fundings", bearer, fundingHandler.Record)
	api.Get("/fundings", bearer, adminOnly, fundingHandler.List)
	api.Get("/fundings/:email", bearer, fundingHandler.ListByEmail)
	api.Delete("/fundings/:id", bearer, adminOnly, fundingHandler.Delete)

	// Uploads
	api.Post("/uploads/presign", bearer, uploadHandler.Presign)
}
