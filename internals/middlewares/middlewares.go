package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	loggerMiddleware "kampusku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain.
func SetupMiddlewares(app *fiber.App, log *zap.Logger) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(loggerMiddleware.RequestLogger(log))
}
