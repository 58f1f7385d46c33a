package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Note     *handlers.NoteHandler
	Category *handlers.CategoryHandler
	Tag      *handlers.TagHandler
	User     *handlers.UserHandler
}

// Route is one entry of the API table. Public routes skip authentication.
// Roles, when set, are checked against the caller's stored role.
type Route struct {
	Method  string
	Path    string
	Public  bool
	Roles   []models.Role
	Handler fiber.Handler
}

var adminOnly = []models.Role{models.RoleAdmin}

// Table lists every route under /api. Literal segments such as /all are
// listed before the /:id routes they would otherwise collide with.
func Table(h Handlers) []Route {
	return []Route{
		{Method: fiber.MethodGet, Path: "/health", Public: true, Handler: h.Health.Check},

		{Method: fiber.MethodGet, Path: "/auth/google", Public: true, Handler: h.Auth.GoogleLogin},
		{Method: fiber.MethodGet, Path: "/auth/google/callback", Public: true, Handler: h.Auth.GoogleCallback},
		{Method: fiber.MethodGet, Path: "/auth/me", Handler: h.Auth.Me},

		{Method: fiber.MethodPost, Path: "/notes", Handler: h.Note.Create},
		{Method: fiber.MethodGet, Path: "/notes", Handler: h.Note.ListMine},
		{Method: fiber.MethodGet, Path: "/notes/all", Roles: adminOnly, Handler: h.Note.ListAll},
		{Method: fiber.MethodGet, Path: "/notes/:id", Handler: h.Note.Get},
		{Method: fiber.MethodPatch, Path: "/notes/:id", Handler: h.Note.Update},
		{Method: fiber.MethodDelete, Path: "/notes/:id", Handler: h.Note.Delete},

		{Method: fiber.MethodPost, Path: "/categories", Handler: h.Category.Create},
		// Category listing is owner-scoped with an admin /all, like notes and tags.
		{Method: fiber.MethodGet, Path: "/categories", Handler: h.Category.ListMine},
		{Method: fiber.MethodGet, Path: "/categories/all", Roles: adminOnly, Handler: h.Category.ListAll},
		{Method: fiber.MethodGet, Path: "/categories/:id", Handler: h.Category.Get},
		{Method: fiber.MethodPatch, Path: "/categories/:id", Handler: h.Category.Update},
		{Method: fiber.MethodDelete, Path: "/categories/:id", Handler: h.Category.Delete},

		{Method: fiber.MethodPost, Path: "/tags", Handler: h.Tag.Create},
		{Method: fiber.MethodGet, Path: "/tags", Handler: h.Tag.ListMine},
		{Method: fiber.MethodGet, Path: "/tags/all", Roles: adminOnly, Handler: h.Tag.ListAll},
		{Method: fiber.MethodGet, Path: "/tags/:id", Handler: h.Tag.Get},
		{Method: fiber.MethodPatch, Path: "/tags/:id", Handler: h.Tag.Update},
		{Method: fiber.MethodDelete, Path: "/tags/:id", Handler: h.Tag.Delete},

		{Method: fiber.MethodPost, Path: "/users", Public: true, Handler: h.User.Create},
		{Method: fiber.MethodGet, Path: "/users", Roles: adminOnly, Handler: h.User.List},
		{Method: fiber.MethodGet, Path: "/users/:id", Roles: adminOnly, Handler: h.User.Get},
		{Method: fiber.MethodPatch, Path: "/users/:id", Roles: adminOnly, Handler: h.User.Update},
		{Method: fiber.MethodDelete, Path: "/users/:id", Roles: adminOnly, Handler: h.User.Delete},
	}
}

type Options struct {
	// RateLimit is the per-IP budget per minute for /api. Zero disables it.
	RateLimit int
	// AuthRateLimit is the stricter budget for /api/auth.
	AuthRateLimit int
}

func Setup(app *fiber.App, tokens *services.TokenIssuer, policy *services.RolePolicy, h Handlers, opts Options) {
	api := app.Group("/api")

	if opts.RateLimit > 0 {
		api.Use(ipLimiter(opts.RateLimit))
	}
	if opts.AuthRateLimit > 0 {
		api.Use("/auth", ipLimiter(opts.AuthRateLimit))
	}

	protected := []fiber.Handler{middleware.JWTProtected(tokens), middleware.Identity(tokens)}

	for _, r := range Table(h) {
		chain := make([]fiber.Handler, 0, len(protected)+2)
		if !r.Public {
			chain = append(chain, protected...)
			if len(r.Roles) > 0 {
				chain = append(chain, middleware.RequireRoles(policy, r.Roles...))
			}
		}
		chain = append(chain, r.Handler)
		api.Add(r.Method, r.Path, chain...)
	}
}

func ipLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
