package routes

import (
	"site-portal/internal/handler"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAdminRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewAdminHandler()

	// Gerbang password tunggal untuk layar pengaturan
	app.Post("/api/admin/login", hdl.Login)
}
