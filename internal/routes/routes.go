package routes

import (
	"time"

	"github.com/everafter-app/everafter-backend/internal/config"
	"github.com/everafter-app/everafter-backend/internal/handlers"
	"github.com/everafter-app/everafter-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	timelineHandler *handlers.TimelineHandler,
	plannerHandler *handlers.PlannerHandler,
	commentHandler *handlers.CommentHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes get the JWT middleware individually so the
	// public ones above stay public.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)
	api.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Put("/me", middleware.JWTProtected(cfg), authHandler.UpdateMe)

	// Timeline (all bearer-protected)
	timeline := api.Group("/timeline", middleware.JWTProtected(cfg))
	timeline.Get("/", timelineHandler.Get)
	timeline.Get("/template", timelineHandler.Template)
	timeline.Post("/item", timelineHandler.SaveItem)
	timeline.Post("/selection", timelineHandler.SaveSelection)
	timeline.Post("/text-inputs", timelineHandler.SaveTextInputs)
	timeline.Post("/bulk", timelineHandler.SaveBulk)
	timeline.Delete("/clear", timelineHandler.Clear)
	timeline.Delete("/item/:itemId", timelineHandler.DeleteItem)

	// Planner documents (bearer-protected)
	api.Get("/budget", middleware.JWTProtected(cfg), plannerHandler.GetBudget)
	api.Put("/budget", middleware.JWTProtected(cfg), plannerHandler.SaveBudget)
	api.Get("/checklist", middleware.JWTProtected(cfg), plannerHandler.GetChecklist)
	api.Put("/checklist", middleware.JWTProtected(cfg), plannerHandler.SaveChecklist)
	api.Get("/guests", middleware.JWTProtected(cfg), plannerHandler.GetGuests)
	api.Put("/guests", middleware.JWTProtected(cfg), plannerHandler.SaveGuests)

	// Blog comments — creating and listing approved comments is public
	api.Post("/posts/:slug/comments", commentHandler.Create)
	api.Get("/posts/:slug/comments", commentHandler.ListApproved)

	// Comment moderation (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(cfg))
	admin.Get("/comments", commentHandler.AdminList)
	admin.Put("/comments/:id/approve", commentHandler.Approve)
	admin.Delete("/comments/:id", commentHandler.Delete)
}
