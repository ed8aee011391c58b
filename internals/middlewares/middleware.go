package middlewares

import "github.com/gofiber/fiber/v2"

// SetupMiddlewares memasang middleware global dengan urutan tetap:
// recover paling luar, lalu CORS.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
}
