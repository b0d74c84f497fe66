package routes

import (
	"site-portal/internal/handler"
	"site-portal/internal/middleware"
	"site-portal/internal/repository"
	"site-portal/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	uc := usecase.NewAttendanceUsecase(employeeRepo, attendanceRepo)
	hdl := handler.NewAttendanceHandler(uc, attendanceRepo)

	api := app.Group("/api/attendance")
	api.Post("/", hdl.Create)
	api.Get("/exists", hdl.Exists)
	api.Get("/summary", hdl.GetSummary)
	api.Get("/summary/export", hdl.ExportSummaryExcel)
	api.Get("/employee/:employeeId", hdl.GetByEmployee)

	admin := app.Group("/api/admin/attendance", middleware.AdminAuth)
	admin.Delete("/:id", hdl.Delete)
}
