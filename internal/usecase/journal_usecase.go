package usecase

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"site-portal/internal/model"
	"site-portal/internal/repository"
	"site-portal/internal/utils"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// Satu halaman jurnal memuat satu minggu kerja
const JournalRecordsPerPage = 7

// Lebar kolom tabel jurnal dalam mm (total 190, pas margin A4 10mm)
var journalColWidths = [5]float64{25, 55, 35, 45, 30}

var journalColHeaders = [5]string{"Tanggal", "Kegiatan", "Lokasi", "Catatan Penting", "Dokumentasi Foto"}

// JournalFileName membentuk nama file unduhan yang deterministik.
func JournalFileName(employeeName string, startDate string, endDate string) string {
	return fmt.Sprintf("Jurnal_%s_%s_%s.pdf", employeeName, startDate, endDate)
}

// PaginateRecords memotong daftar record menjadi blok berukuran perPage.
// Blok terakhir boleh lebih pendek.
func PaginateRecords(records []model.AttendanceRecord, perPage int) [][]model.AttendanceRecord {
	var pages [][]model.AttendanceRecord
	for start := 0; start < len(records); start += perPage {
		end := start + perPage
		if end > len(records) {
			end = len(records)
		}
		pages = append(pages, records[start:end])
	}
	return pages
}

type JournalUsecase struct {
	employees repository.EmployeeRepository
	records   repository.AttendanceRepository
}

func NewJournalUsecase(employees repository.EmployeeRepository, records repository.AttendanceRepository) *JournalUsecase {
	return &JournalUsecase{employees: employees, records: records}
}

// Generate mengambil riwayat absensi karyawan dalam periode lalu merendernya
// menjadi dokumen PDF multi halaman. Mengembalikan dokumen dan nama filenya.
func (u *JournalUsecase) Generate(employeeID string, startDate string, endDate string) (*gofpdf.Fpdf, string, error) {
	employee, err := u.employees.GetByID(employeeID)
	if err != nil {
		return nil, "", ErrEmployeeNotFound
	}

	// Store mengembalikan record terurut tanggal menurun; jurnal memakai
	// urutan itu apa adanya
	records, err := u.records.GetByEmployee(employeeID, startDate, endDate)
	if err != nil {
		return nil, "", err
	}

	pdf := BuildJournalPDF(*employee, records, startDate, endDate)
	return pdf, JournalFileName(employee.Name, startDate, endDate), nil
}

// BuildJournalPDF merender halaman-halaman jurnal: 7 record per halaman,
// setiap halaman berdiri sendiri (header, identitas, tabel, blok tanda tangan).
func BuildJournalPDF(employee model.Employee, records []model.AttendanceRecord, startDate string, endDate string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 10)

	for pageIdx, pageRecords := range PaginateRecords(records, JournalRecordsPerPage) {
		pdf.AddPage()

		// Judul
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, "JURNAL LAPORAN KEGIATAN MINGGUAN", "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 8, "T4T TREES+TREES", "", 1, "C", false, 0, "")
		pdf.Ln(4)

		// Identitas karyawan
		pdf.SetFont("Arial", "", 10)
		pdf.SetX(20)
		pdf.CellFormat(0, 6, "Nama Karyawan: "+employee.Name, "", 1, "L", false, 0, "")
		pdf.SetX(20)
		pdf.CellFormat(0, 6, "Jabatan: "+employee.Position, "", 1, "L", false, 0, "")
		pdf.SetX(20)
		pdf.CellFormat(0, 6, "Unit: "+employee.Unit, "", 1, "L", false, 0, "")

		// Periode diambil dari record pertama dan terakhir HALAMAN INI,
		// bukan rentang yang diminta
		firstDate, lastDate := startDate, endDate
		if len(pageRecords) > 0 {
			firstDate = pageRecords[0].Date
			lastDate = pageRecords[len(pageRecords)-1].Date
		}
		pdf.SetX(20)
		pdf.CellFormat(0, 6, fmt.Sprintf("Periode: %s - %s", firstDate, lastDate), "", 1, "L", false, 0, "")
		pdf.Ln(3)

		// Header tabel
		pdf.SetX(10)
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(66, 139, 202)
		pdf.SetTextColor(255, 255, 255)
		for i, header := range journalColHeaders {
			pdf.CellFormat(journalColWidths[i], 8, header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		// Baris data
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(0, 0, 0)
		const rowHeight = 19.0

		for rowIdx, rec := range pageRecords {
			pdf.SetX(10)

			dayOff := rec.WorkType == model.WorkTypeDayOff
			if dayOff {
				pdf.SetFillColor(255, 200, 200)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}

			activity := rec.ActivityDetail
			if dayOff {
				activity = "DAY OFF"
			}

			photoMark := "-"
			if rec.PhotoURL != "" {
				photoMark = "[Foto]"
			}

			cells := [5]string{rec.Date, activity, rec.Location, rec.Notes, photoMark}
			for i, text := range cells {
				if i == 4 {
					x, y := pdf.GetX(), pdf.GetY()
					pdf.CellFormat(journalColWidths[i], rowHeight, "", "1", 0, "C", dayOff, 0, "")
					if rec.PhotoURL != "" {
						if !embedThumbnail(pdf, fmt.Sprintf("foto_%d_%d", pageIdx, rowIdx), rec.PhotoURL, x+7.5, y+2) {
							// Thumbnail gagal: baris tetap dirender dengan penanda teks
							pdf.SetXY(x, y)
							pdf.CellFormat(journalColWidths[i], rowHeight, photoMark, "", 0, "C", false, 0, "")
						}
					} else {
						pdf.SetXY(x, y)
						pdf.CellFormat(journalColWidths[i], rowHeight, photoMark, "", 0, "C", false, 0, "")
					}
					continue
				}
				pdf.CellFormat(journalColWidths[i], rowHeight, text, "1", 0, "", dayOff, 0, "")
			}
			pdf.Ln(-1)
		}

		// Blok tanda tangan
		signY := pdf.GetY() + 12
		pdf.SetFont("Arial", "", 10)

		pdf.SetXY(30, signY)
		pdf.CellFormat(60, 5, "Dibuat Oleh:", "", 2, "L", false, 0, "")
		pdf.Ln(5)
		pdf.SetX(30)
		pdf.CellFormat(60, 5, employee.Name, "", 2, "L", false, 0, "")
		pdf.SetX(30)
		pdf.CellFormat(60, 5, employee.Position, "", 2, "L", false, 0, "")

		if employee.SignatureURL != "" {
			embedSignature(pdf, fmt.Sprintf("ttd_%d", pageIdx), employee.SignatureURL, 30, signY+22)
		}

		pdf.SetXY(130, signY)
		pdf.CellFormat(60, 5, "Diperiksa Oleh:", "", 2, "L", false, 0, "")
		pdf.Ln(5)
		pdf.SetX(130)
		pdf.CellFormat(60, 5, "Dian Wardana", "", 2, "L", false, 0, "")
		pdf.SetX(130)
		pdf.CellFormat(60, 5, "Site Manager Citanduy", "", 2, "L", false, 0, "")

		// Kotak tanda tangan manual approver
		pdf.Rect(130, signY+22, 40, 20, "D")
		pdf.SetXY(130, signY+30)
		pdf.CellFormat(40, 5, "[Tanda Tangan]", "", 0, "C", false, 0, "")
	}

	return pdf
}

// embedThumbnail menempelkan thumbnail 15x15mm dari sebuah data URL foto.
// Gambar rusak/oversized hanya dicatat di log dan tidak menggagalkan laporan.
func embedThumbnail(pdf *gofpdf.Fpdf, name string, dataURL string, x float64, y float64) bool {
	img, ok := decodeDataURLImage(dataURL)
	if !ok {
		return false
	}

	// Downscale dulu supaya PDF tidak membengkak oleh foto kamera penuh
	thumb := imaging.Fit(img, 160, 160, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		log.Printf("jurnal: gagal encode thumbnail %s: %v", name, err)
		return false
	}

	pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "JPG"}, &buf)
	pdf.ImageOptions(name, x, y, 15, 15, false, gofpdf.ImageOptions{ImageType: "JPG"}, 0, "")
	return true
}

// embedSignature menempelkan gambar tanda tangan 40x20mm; kegagalan dicatat saja.
func embedSignature(pdf *gofpdf.Fpdf, name string, dataURL string, x float64, y float64) {
	img, ok := decodeDataURLImage(dataURL)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		log.Printf("jurnal: gagal encode tanda tangan %s: %v", name, err)
		return
	}

	pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	pdf.ImageOptions(name, x, y, 40, 20, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

func decodeDataURLImage(dataURL string) (image.Image, bool) {
	_, data, err := utils.DecodeDataURL(dataURL)
	if err != nil {
		log.Printf("jurnal: data URL gambar tidak valid: %v", err)
		return nil, false
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("jurnal: gagal decode gambar: %v", err)
		return nil, false
	}

	return img, true
}
