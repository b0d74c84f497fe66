package handler

import (
	"strings"

	"site-portal/internal/model"
	"site-portal/internal/repository"
	"site-portal/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

type EmployeeRequest struct {
	Name                      string `json:"name" validate:"required"`
	Position                  string `json:"position" validate:"required"`
	Unit                      string `json:"unit" validate:"required"`
	SignatureURL              string `json:"signature_url"`
	RequirePhotoDocumentation bool   `json:"require_photo_documentation"`
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	search := c.Query("search")

	employees, err := h.repo.GetAll(search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data karyawan",
		"data":    employees,
	})
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data karyawan",
		"data":    employee,
	})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama, jabatan, dan unit wajib diisi"})
	}
	if err := validateSignature(req.SignatureURL); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	employee := model.Employee{
		Name:                      req.Name,
		Position:                  req.Position,
		Unit:                      req.Unit,
		SignatureURL:              req.SignatureURL,
		RequirePhotoDocumentation: req.RequirePhotoDocumentation,
	}

	if err := h.repo.Create(&employee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan karyawan"})
	}

	return c.JSON(fiber.Map{
		"message": "Karyawan berhasil ditambahkan",
		"data":    employee,
	})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	employee, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama, jabatan, dan unit wajib diisi"})
	}
	if err := validateSignature(req.SignatureURL); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	employee.Name = req.Name
	employee.Position = req.Position
	employee.Unit = req.Unit
	employee.SignatureURL = req.SignatureURL
	employee.RequirePhotoDocumentation = req.RequirePhotoDocumentation

	if err := h.repo.Update(employee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate karyawan"})
	}

	return c.JSON(fiber.Map{
		"message": "Karyawan berhasil diupdate",
		"data":    employee,
	})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus karyawan"})
	}

	return c.JSON(fiber.Map{"message": "Karyawan berhasil dihapus"})
}

// Tanda tangan boleh kosong; kalau dikirim sebagai data URL, cek ukuran/format
func validateSignature(signatureURL string) error {
	if signatureURL == "" || !strings.HasPrefix(signatureURL, "data:") {
		return nil
	}
	return utils.ValidateImageDataURL(signatureURL)
}
