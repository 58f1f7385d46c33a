package server

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/services"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

type Options struct {
	Provider      services.IdentityProvider
	AccessLog     bool
	RateLimit     int
	AuthRateLimit int
}

// New wires services, handlers and middleware into a Fiber app.
func New(cfg *config.Config, db *gorm.DB, opts Options) *fiber.App {
	tokens := services.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry)
	policy := services.NewRolePolicy(db)
	refs := services.NewReferenceValidator(db)

	authService := services.NewAuthService(db, cfg, tokens)
	noteService := services.NewNoteService(db, policy, refs)
	categoryService := services.NewCategoryService(db, policy)
	tagService := services.NewTagService(db, policy)
	userService := services.NewUserService(db)

	provider := opts.Provider
	if provider == nil {
		provider = services.NewGoogleProvider(cfg)
	}

	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, provider, cfg.AppEnv == "production"),
		Health:   handlers.NewHealthHandler(db),
		Note:     handlers.NewNoteHandler(noteService),
		Category: handlers.NewCategoryHandler(categoryService),
		Tag:      handlers.NewTagHandler(tagService),
		User:     handlers.NewUserHandler(userService),
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
		}))
	}
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, tokens, policy, h, routes.Options{
		RateLimit:     opts.RateLimit,
		AuthRateLimit: opts.AuthRateLimit,
	})

	return app
}

// ErrorHandler renders errors that escape handlers, including Fiber's own
// 404 and 405. Server errors never expose their message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
