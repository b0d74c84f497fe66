package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Position  string    `json:"position"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Tanda tangan tersimpan sebagai data URL (base64) agar bisa langsung
	// dipakai di <img> maupun disisipkan ke PDF jurnal
	SignatureURL string `json:"signature_url" gorm:"type:longtext"`

	// Jika true, absensi "Masuk" untuk karyawan ini wajib melampirkan foto
	RequirePhotoDocumentation bool `json:"require_photo_documentation" gorm:"default:false"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
