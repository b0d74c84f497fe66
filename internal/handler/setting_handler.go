package handler

import (
	"errors"
	"fmt"

	"site-portal/internal/model"
	"site-portal/internal/repository"
	"site-portal/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type SettingHandler struct {
	settings repository.AppSettingRepository
	buttons  repository.ButtonSettingRepository
}

func NewSettingHandler(settings repository.AppSettingRepository, buttons repository.ButtonSettingRepository) *SettingHandler {
	return &SettingHandler{settings: settings, buttons: buttons}
}

// GetAllSettings mengembalikan map key -> value, dilengkapi nilai default
// untuk key yang belum pernah disimpan. Dibaca layar depan saat mount.
func (h *SettingHandler) GetAllSettings(c *fiber.Ctx) error {
	rows, err := h.settings.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengaturan"})
	}

	values := make(map[string]string)
	for key, def := range model.SettingDefaults {
		values[key] = def
	}
	for _, row := range rows {
		if row.SettingValue != "" {
			values[row.SettingKey] = row.SettingValue
		}
	}

	return c.JSON(fiber.Map{"data": values})
}

// UploadPhoto menerima file gambar (multipart), memvalidasi ukuran/format
// SEBELUM encoding, lalu menyimpannya sebagai data URL di app_settings.
func (h *SettingHandler) UploadPhoto(c *fiber.Ctx) error {
	key := c.Params("key")
	if _, ok := model.SettingDefaults[key]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kunci pengaturan tidak dikenal"})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File foto wajib diupload"})
	}

	dataURL, err := utils.FileToDataURL(fileHeader)
	if err != nil {
		if errors.Is(err, utils.ErrImageTooLarge) || errors.Is(err, utils.ErrImageFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membaca file"})
	}

	if err := h.settings.Upsert(key, dataURL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan pengaturan"})
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Foto %s berhasil diupdate!", key)})
}

// GetButtons melayani dua layar: admin (semua tombol) dan home
// (?category=home&enabled=true, hanya tombol aktif).
func (h *SettingHandler) GetButtons(c *fiber.Ctx) error {
	category := c.Query("category")
	enabledOnly := c.Query("enabled") == "true"

	buttons, err := h.buttons.GetAll(category, enabledOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil pengaturan tombol"})
	}

	return c.JSON(fiber.Map{"data": buttons})
}

type ToggleButtonRequest struct {
	IsEnabled *bool `json:"is_enabled" validate:"required"`
}

func (h *SettingHandler) ToggleButton(c *fiber.Ctx) error {
	var req ToggleButtonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field is_enabled wajib diisi"})
	}

	id := c.Params("id")
	if err := h.buttons.UpdateEnabled(id, *req.IsEnabled); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengupdate pengaturan tombol"})
	}

	button, err := h.buttons.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengaturan tombol tidak ditemukan"})
	}

	return c.JSON(fiber.Map{
		"message": "Pengaturan tombol berhasil diupdate!",
		"data":    button,
	})
}
