package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "naviplan_backend/internals/features/users/user/controller"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	auth := r.Group("/auth")
	auth.Post("/register", ctrl.Register) // POST /api/auth/register
	auth.Post("/login", ctrl.Login)       // POST /api/auth/login
}
