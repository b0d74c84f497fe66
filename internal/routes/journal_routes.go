package routes

import (
	"site-portal/internal/handler"
	"site-portal/internal/repository"
	"site-portal/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJournalRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	uc := usecase.NewJournalUsecase(employeeRepo, attendanceRepo)
	hdl := handler.NewJournalHandler(uc)

	api := app.Group("/api/journal")
	api.Get("/:employeeId/pdf", hdl.ExportPDF)
	api.Post("/:employeeId/email", hdl.EmailPDF)
}
