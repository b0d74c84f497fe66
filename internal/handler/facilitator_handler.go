package handler

import (
	"site-portal/internal/model"
	"site-portal/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type FacilitatorHandler struct {
	repo repository.FacilitatorRepository
}

func NewFacilitatorHandler(repo repository.FacilitatorRepository) *FacilitatorHandler {
	return &FacilitatorHandler{repo: repo}
}

type FacilitatorRequest struct {
	FCID          string `json:"fc_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	NIK           string `json:"nik"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	BirthPlace    string `json:"birth_place"`
	BirthDate     string `json:"birth_date"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
	Username      string `json:"username"`
	PhotoURL      string `json:"photo_url"`
}

func (req *FacilitatorRequest) toModel() model.FieldFacilitator {
	return model.FieldFacilitator{
		FCID:          req.FCID,
		Name:          req.Name,
		NIK:           req.NIK,
		Phone:         req.Phone,
		Address:       req.Address,
		BirthPlace:    req.BirthPlace,
		BirthDate:     req.BirthDate,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		AccountHolder: req.AccountHolder,
		Username:      req.Username,
		PhotoURL:      req.PhotoURL,
	}
}

func (h *FacilitatorHandler) GetCoordinators(c *fiber.Ctx) error {
	coordinators, err := h.repo.GetCoordinators()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data FC"})
	}

	return c.JSON(fiber.Map{"data": coordinators})
}

type CoordinatorRequest struct {
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photo_url"`
}

func (h *FacilitatorHandler) UpdateCoordinator(c *fiber.Ctx) error {
	var req CoordinatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama FC wajib diisi"})
	}

	coordinator := model.FieldCoordinator{ID: c.Params("id"), Name: req.Name, PhotoURL: req.PhotoURL}
	if err := h.repo.UpdateCoordinator(&coordinator); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate FC"})
	}

	return c.JSON(fiber.Map{
		"message": "FC berhasil diupdate",
		"data":    coordinator,
	})
}

// GetFacilitators mengembalikan semua FF, atau FF milik satu FC via ?fc_id=
func (h *FacilitatorHandler) GetFacilitators(c *fiber.Ctx) error {
	var (
		facilitators []model.FieldFacilitator
		err          error
	)

	if fcID := c.Query("fc_id"); fcID != "" {
		facilitators, err = h.repo.GetFacilitators(fcID)
	} else {
		facilitators, err = h.repo.GetAllFacilitators()
	}

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data FF"})
	}

	return c.JSON(fiber.Map{"data": facilitators})
}

func (h *FacilitatorHandler) CreateFacilitator(c *fiber.Ctx) error {
	var req FacilitatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan FC wajib diisi"})
	}

	facilitator := req.toModel()
	if err := h.repo.CreateFacilitator(&facilitator); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan FF"})
	}

	return c.JSON(fiber.Map{
		"message": "FF berhasil ditambahkan",
		"data":    facilitator,
	})
}

// BulkCreateFacilitators dipakai saat import massal data FF
func (h *FacilitatorHandler) BulkCreateFacilitators(c *fiber.Ctx) error {
	var reqs []FacilitatorRequest
	if err := c.BodyParser(&reqs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if len(reqs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Daftar FF kosong"})
	}

	facilitators := make([]model.FieldFacilitator, 0, len(reqs))
	for _, req := range reqs {
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan FC wajib diisi untuk setiap FF"})
		}
		facilitators = append(facilitators, req.toModel())
	}

	if err := h.repo.CreateManyFacilitators(facilitators); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan daftar FF"})
	}

	return c.JSON(fiber.Map{
		"message": "Daftar FF berhasil disimpan",
		"data":    facilitators,
	})
}

func (h *FacilitatorHandler) UpdateFacilitator(c *fiber.Ctx) error {
	var req FacilitatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama dan FC wajib diisi"})
	}

	facilitator := req.toModel()
	facilitator.ID = c.Params("id")
	if err := h.repo.UpdateFacilitator(&facilitator); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate FF"})
	}

	return c.JSON(fiber.Map{
		"message": "FF berhasil diupdate",
		"data":    facilitator,
	})
}

func (h *FacilitatorHandler) DeleteFacilitator(c *fiber.Ctx) error {
	if err := h.repo.DeleteFacilitator(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus FF"})
	}

	return c.JSON(fiber.Map{"message": "FF berhasil dihapus"})
}
