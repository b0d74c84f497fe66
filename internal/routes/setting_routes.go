package routes

import (
	"site-portal/internal/handler"
	"site-portal/internal/middleware"
	"site-portal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSettingRoutes(app *fiber.App, db *gorm.DB) {
	settingRepo := repository.NewAppSettingRepository(db)
	buttonRepo := repository.NewButtonSettingRepository(db)
	hdl := handler.NewSettingHandler(settingRepo, buttonRepo)

	// Dibaca layar depan saat mount dan setiap kembali ke home
	app.Get("/api/settings", hdl.GetAllSettings)
	app.Get("/api/buttons", hdl.GetButtons)

	admin := app.Group("/api/admin", middleware.AdminAuth)
	admin.Put("/settings/:key", hdl.UploadPhoto)
	admin.Put("/buttons/:id", hdl.ToggleButton)
}
