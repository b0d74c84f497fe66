package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"site-portal/config"
	"site-portal/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/gomail.v2"
)

type JournalHandler struct {
	usecase *usecase.JournalUsecase
}

func NewJournalHandler(uc *usecase.JournalUsecase) *JournalHandler {
	return &JournalHandler{usecase: uc}
}

// ExportPDF mengunduh jurnal mingguan karyawan untuk periode yang diminta.
func (h *JournalHandler) ExportPDF(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter start dan end wajib diisi"})
	}

	pdf, filename, err := h.usecase.Generate(c.Params("employeeId"), start, end)
	if err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jurnal"})
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat PDF"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}

type EmailJournalRequest struct {
	To string `json:"to" validate:"required,email"`
}

// EmailPDF mengirim jurnal yang sama sebagai lampiran email ke kantor site.
func (h *JournalHandler) EmailPDF(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter start dan end wajib diisi"})
	}

	var req EmailJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Alamat email tujuan tidak valid"})
	}

	pdf, filename, err := h.usecase.Generate(c.Params("employeeId"), start, end)
	if err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jurnal"})
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat PDF"})
	}

	from := config.GetEnv("SMTP_FROM", config.GetEnv("SMTP_USER", ""))

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", req.To)
	m.SetHeader("Subject", fmt.Sprintf("Jurnal Kegiatan %s s.d. %s", start, end))
	m.SetBody("text/plain", "Terlampir jurnal laporan kegiatan mingguan.")
	m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(buf.Bytes())
		return err
	}))

	dialer := gomail.NewDialer(
		config.GetEnv("SMTP_HOST", "localhost"),
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
	)

	if err := dialer.DialAndSend(m); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengirim email"})
	}

	return c.JSON(fiber.Map{"message": "Jurnal berhasil dikirim ke " + req.To})
}
