package routes

import (
	"site-portal/internal/handler"
	"site-portal/internal/middleware"
	"site-portal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	hdl := handler.NewEmployeeHandler(repo)

	// Daftar karyawan dibaca form absensi dan layar jurnal
	app.Get("/api/employees", hdl.GetAll)
	app.Get("/api/employees/:id", hdl.GetByID)

	admin := app.Group("/api/admin/employees", middleware.AdminAuth)
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
}
