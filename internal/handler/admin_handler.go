package handler

import (
	"site-portal/config"
	"site-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login adalah gerbang password tunggal untuk layar pengaturan.
// Password cocok -> token sesi 24 jam, tanpa identitas per-user.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password wajib diisi"})
	}

	if !verifyAdminPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Password salah!"})
	}

	token, err := middleware.GenerateAdminToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
	})
}

// ADMIN_PASSWORD_HASH (bcrypt) diprioritaskan; kalau tidak diset,
// fallback ke perbandingan plaintext ADMIN_PASSWORD.
func verifyAdminPassword(password string) bool {
	if hash := config.GetEnv("ADMIN_PASSWORD_HASH", ""); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	return password == config.GetEnv("ADMIN_PASSWORD", "Rijal1101*")
}
