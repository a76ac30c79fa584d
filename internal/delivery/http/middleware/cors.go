package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для портала, который вызывает калькулятор из браузера.
// allowOrigins - список через запятую; "*" (или пустая строка) отключает credentials.
func CORS(allowOrigins string) fiber.Handler {
	allowOrigins = strings.TrimSpace(allowOrigins)
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Accept-Language",
		ExposeHeaders:    "Location",
		AllowCredentials: allowOrigins != "*",
		MaxAge:           600,
	})
}
