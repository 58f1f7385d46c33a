package middleware

import (
	"github.com/ahmetcoskunkizilkaya/noteapp-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows the configured origins. Credentials are only allowed for an
// explicit origin list; Fiber rejects them together with a wildcard.
func CORS(cfg *config.Config) fiber.Handler {
	origins := cfg.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "X-Request-ID, Location",
		AllowCredentials: origins != "*",
		MaxAge:           600,
	})
}
