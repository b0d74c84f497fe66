package usecase

import (
	"errors"
	"strings"
	"time"

	"site-portal/internal/model"
	"site-portal/internal/repository"
	"site-portal/internal/utils"
)

var (
	ErrMissingSelection  = errors.New("silakan pilih karyawan dan tanggal")
	ErrEmployeeNotFound  = errors.New("karyawan tidak ditemukan")
	ErrAlreadySubmitted  = errors.New("absen telah diisi untuk tanggal ini")
	ErrMissingWorkDetail = errors.New("lokasi dan detail kegiatan wajib diisi untuk jenis \"Masuk\"")
	ErrPhotoRequired     = errors.New("foto dokumentasi wajib diupload untuk jabatan ini")
)

// SummaryEntry adalah rekap per karyawan dalam satu periode.
// Employee bisa nil jika record-nya yatim (karyawan sudah dihapus).
type SummaryEntry struct {
	Employee *model.Employee `json:"employee"`
	Present  int             `json:"present"`
	DayOff   int             `json:"day_off"`
}

// Summarize mengelompokkan record absensi per karyawan dan menghitung
// jumlah Masuk vs Day Off. Satu kali lewat, urutan entry mengikuti
// kemunculan pertama karyawan di input. Karyawan tanpa record tidak muncul.
func Summarize(records []model.AttendanceRecord) []SummaryEntry {
	index := make(map[string]int)
	entries := make([]SummaryEntry, 0, len(records))

	for _, rec := range records {
		i, ok := index[rec.EmployeeID]
		if !ok {
			i = len(entries)
			index[rec.EmployeeID] = i
			entries = append(entries, SummaryEntry{Employee: rec.Employee})
		}

		if rec.WorkType == model.WorkTypeMasuk {
			entries[i].Present++
		} else {
			entries[i].DayOff++
		}
	}

	return entries
}

// CurrentPayPeriod menghitung periode gajian berjalan: tanggal 25 bulan
// sebelumnya sampai tanggal 24 bulan ini (aturan bisnis site, jangan diubah).
func CurrentPayPeriod(now time.Time) (string, string) {
	start := time.Date(now.Year(), now.Month()-1, 25, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), 24, 0, 0, 0, 0, now.Location())
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

type SubmitAttendanceInput struct {
	EmployeeID     string
	Date           string
	WorkType       string
	Location       string
	ActivityDetail string
	Notes          string
	PhotoURL       string
}

type AttendanceUsecase struct {
	employees repository.EmployeeRepository
	records   repository.AttendanceRepository
}

func NewAttendanceUsecase(employees repository.EmployeeRepository, records repository.AttendanceRepository) *AttendanceUsecase {
	return &AttendanceUsecase{employees: employees, records: records}
}

// Submit memvalidasi lalu menyimpan satu record absensi.
// Tidak ada tulisan ke database sama sekali jika validasi gagal.
func (u *AttendanceUsecase) Submit(input SubmitAttendanceInput) (*model.AttendanceRecord, error) {
	if input.EmployeeID == "" || input.Date == "" {
		return nil, ErrMissingSelection
	}

	employee, err := u.employees.GetByID(input.EmployeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	// Pre-check duplikat untuk pesan yang ramah; unique index (employee_id, date)
	// tetap menjadi penjaga terakhir saat dua submit balapan
	exists, err := u.records.Exists(input.EmployeeID, input.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubmitted
	}

	record := model.AttendanceRecord{
		EmployeeID: input.EmployeeID,
		Date:       input.Date,
		WorkType:   input.WorkType,
	}

	if input.WorkType == model.WorkTypeMasuk {
		if strings.TrimSpace(input.Location) == "" || strings.TrimSpace(input.ActivityDetail) == "" {
			return nil, ErrMissingWorkDetail
		}
		if employee.RequirePhotoDocumentation && input.PhotoURL == "" {
			return nil, ErrPhotoRequired
		}
		if input.PhotoURL != "" {
			if err := utils.ValidateImageDataURL(input.PhotoURL); err != nil {
				return nil, err
			}
		}

		record.Location = input.Location
		record.ActivityDetail = input.ActivityDetail
		record.Notes = input.Notes
		record.PhotoURL = input.PhotoURL
	}
	// Day Off: lokasi/kegiatan/catatan/foto selalu disimpan kosong,
	// apa pun isi form yang dikirim

	if err := u.records.Create(&record); err != nil {
		return nil, err
	}

	return &record, nil
}

// Summary mengambil record dalam periode lalu merekapnya. Nilai kedua adalah
// jumlah record yatim (karyawan sudah dihapus) untuk keperluan log peringatan.
func (u *AttendanceUsecase) Summary(startDate string, endDate string) ([]SummaryEntry, int, error) {
	records, err := u.records.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, 0, err
	}

	orphans := 0
	for _, rec := range records {
		if rec.Employee == nil {
			orphans++
		}
	}

	return Summarize(records), orphans, nil
}
