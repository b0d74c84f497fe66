package routes

import (
	"site-portal/internal/handler"
	"site-portal/internal/middleware"
	"site-portal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFacilitatorRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewFacilitatorRepository(db)
	hdl := handler.NewFacilitatorHandler(repo)

	app.Get("/api/coordinators", hdl.GetCoordinators)
	app.Get("/api/facilitators", hdl.GetFacilitators)

	admin := app.Group("/api/admin", middleware.AdminAuth)
	admin.Put("/coordinators/:id", hdl.UpdateCoordinator)
	admin.Post("/facilitators", hdl.CreateFacilitator)
	admin.Post("/facilitators/bulk", hdl.BulkCreateFacilitators)
	admin.Put("/facilitators/:id", hdl.UpdateFacilitator)
	admin.Delete("/facilitators/:id", hdl.DeleteFacilitator)
}
