package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"site-portal/internal/repository"
	"site-portal/internal/usecase"
	"site-portal/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type AttendanceHandler struct {
	usecase *usecase.AttendanceUsecase
	repo    repository.AttendanceRepository
}

func NewAttendanceHandler(uc *usecase.AttendanceUsecase, repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{usecase: uc, repo: repo}
}

type SubmitAttendanceRequest struct {
	EmployeeID     string `json:"employee_id" validate:"required"`
	Date           string `json:"date" validate:"required"`
	WorkType       string `json:"work_type" validate:"required,oneof='Masuk' 'Day Off'"`
	Location       string `json:"location"`
	ActivityDetail string `json:"activity_detail"`
	Notes          string `json:"notes"`
	PhotoURL       string `json:"photo_url"`
}

func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var req SubmitAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Silakan pilih karyawan, tanggal, dan jenis kehadiran"})
	}

	record, err := h.usecase.Submit(usecase.SubmitAttendanceInput{
		EmployeeID:     req.EmployeeID,
		Date:           req.Date,
		WorkType:       req.WorkType,
		Location:       req.Location,
		ActivityDetail: req.ActivityDetail,
		Notes:          req.Notes,
		PhotoURL:       req.PhotoURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmployeeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, usecase.ErrMissingSelection),
			errors.Is(err, usecase.ErrAlreadySubmitted),
			errors.Is(err, usecase.ErrMissingWorkDetail),
			errors.Is(err, usecase.ErrPhotoRequired),
			errors.Is(err, utils.ErrImageTooLarge),
			errors.Is(err, utils.ErrImageFormat):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan absensi"})
	}

	return c.JSON(fiber.Map{
		"message": "Absensi berhasil disimpan!",
		"data":    record,
	})
}

// Exists dipakai form untuk mengunci input saat (karyawan, tanggal) sudah terisi
func (h *AttendanceHandler) Exists(c *fiber.Ctx) error {
	employeeID := c.Query("employee_id")
	date := c.Query("date")
	if employeeID == "" || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter employee_id dan date wajib diisi"})
	}

	exists, err := h.repo.Exists(employeeID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa absensi"})
	}

	return c.JSON(fiber.Map{"exists": exists})
}

func (h *AttendanceHandler) GetByEmployee(c *fiber.Ctx) error {
	records, err := h.repo.GetByEmployee(c.Params("employeeId"), c.Query("start"), c.Query("end"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat absensi"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat",
		"data":    records,
	})
}

// GetSummary merekap Masuk vs Day Off per karyawan. Tanpa parameter periode,
// dipakai periode gajian berjalan (25 bulan lalu s.d. 24 bulan ini).
func (h *AttendanceHandler) GetSummary(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		start, end = usecase.CurrentPayPeriod(time.Now())
	}

	entries, orphans, err := h.usecase.Summary(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil rekap absensi"})
	}
	if orphans > 0 {
		log.Printf("rekap %s..%s: %d record absensi yatim (karyawan sudah dihapus)", start, end, orphans)
	}

	return c.JSON(fiber.Map{
		"message":    "Rekap berhasil",
		"start_date": start,
		"end_date":   end,
		"data":       entries,
	})
}

// ExportSummaryExcel mengunduh rekap periode sebagai file Excel.
func (h *AttendanceHandler) ExportSummaryExcel(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		start, end = usecase.CurrentPayPeriod(time.Now())
	}

	entries, _, err := h.usecase.Summary(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil rekap absensi"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Rekap"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", "REKAP ABSENSI KARYAWAN")
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "F1", headerStyle)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Periode: %s s.d. %s", start, end))

	headers := []string{"Nama", "Jabatan", "Unit", "Masuk", "Day Off", "Total"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c4", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 5
	for _, entry := range entries {
		name, position, unit := "(karyawan terhapus)", "-", "-"
		if entry.Employee != nil {
			name, position, unit = entry.Employee.Name, entry.Employee.Position, entry.Employee.Unit
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), position)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), unit)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), entry.Present)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), entry.DayOff)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), entry.Present+entry.DayOff)
		row++
	}

	f.SetColWidth(sheetName, "A", "C", 25)
	f.SetColWidth(sheetName, "D", "F", 10)
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat Excel"})
	}

	filename := fmt.Sprintf("Rekap_Absensi_%s_%s.xlsx", start, end)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}

func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus absensi"})
	}

	return c.JSON(fiber.Map{"message": "Absensi berhasil dihapus"})
}
