package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WorkTypeMasuk  = "Masuk"
	WorkTypeDayOff = "Day Off"
)

type AttendanceRecord struct {
	ID string `json:"id" gorm:"type:char(36);primaryKey"`

	// Satu record per karyawan per tanggal, dijaga di level storage
	// (bukan hanya pre-check) supaya race antar submit tertutup
	EmployeeID string `json:"employee_id" gorm:"type:char(36);not null;uniqueIndex:idx_employee_date"`
	Date       string `json:"date" gorm:"type:char(10);not null;uniqueIndex:idx_employee_date"` // Format YYYY-MM-DD

	WorkType       string `json:"work_type"` // Masuk / Day Off
	Location       string `json:"location"`
	ActivityDetail string `json:"activity_detail"`
	Notes          string `json:"notes"`
	PhotoURL       string `json:"photo_url" gorm:"type:longtext"` // data URL (base64)

	CreatedAt time.Time `json:"created_at"`

	// Nullable: karyawan bisa saja sudah dihapus (record yatim dibiarkan)
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
