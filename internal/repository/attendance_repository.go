package repository

import (
	"site-portal/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(record *model.AttendanceRecord) error
	Exists(employeeID string, date string) (bool, error)
	GetByEmployee(employeeID string, startDate string, endDate string) ([]model.AttendanceRecord, error)
	GetByDateRange(startDate string, endDate string) ([]model.AttendanceRecord, error)
	Delete(id string) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(record *model.AttendanceRecord) error {
	return r.db.Create(record).Error
}

func (r *attendanceRepository) Exists(employeeID string, date string) (bool, error) {
	var count int64
	err := r.db.Model(&model.AttendanceRecord{}).
		Where("employee_id = ? AND date = ?", employeeID, date).
		Count(&count).Error
	return count > 0, err
}

// GetByEmployee mengembalikan riwayat absensi terurut tanggal menurun.
// Start/end boleh kosong (tanpa filter periode).
func (r *attendanceRepository) GetByEmployee(employeeID string, startDate string, endDate string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	query := r.db.Where("employee_id = ?", employeeID)

	if startDate != "" && endDate != "" {
		query = query.Where("date BETWEEN ? AND ?", startDate, endDate)
	}

	err := query.Order("date desc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) GetByDateRange(startDate string, endDate string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Preload("Employee").
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.AttendanceRecord{}).Error
}
