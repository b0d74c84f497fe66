package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kunci app setting yang dikenali beserta nilai default-nya
const (
	SettingHeaderPhoto  = "header_photo"
	SettingRosterPhoto  = "roster_photo"
	SettingPaymentPhoto = "payment_photo"
)

var SettingDefaults = map[string]string{
	SettingHeaderPhoto:  "https://i.postimg.cc/ZnWHPbw9/T4-T-Logo-Baru-2-1.jpg",
	SettingRosterPhoto:  "https://via.placeholder.com/600x300/e5f3ff/1e40af?text=Jadwal+Roster",
	SettingPaymentPhoto: "https://via.placeholder.com/600x300/f0fdf4/16a34a?text=Info+Pembayaran",
}

type AppSetting struct {
	ID           string    `json:"id" gorm:"type:char(36);primaryKey"`
	SettingKey   string    `json:"setting_key" gorm:"uniqueIndex;not null"`
	SettingValue string    `json:"setting_value" gorm:"type:longtext"` // data URL atau URL eksternal
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *AppSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Kategori tombol di layar depan
const (
	ButtonCategoryHome  = "home"
	ButtonCategoryTKH   = "tkh_attendance"
	ButtonCategoryRecap = "recap_attendance"
)

type ButtonSetting struct {
	ID         string    `json:"id" gorm:"type:char(36);primaryKey"`
	ButtonKey  string    `json:"button_key" gorm:"uniqueIndex;not null"`
	ButtonName string    `json:"button_name"`
	Category   string    `json:"category"` // home / tkh_attendance / recap_attendance
	IsEnabled  bool      `json:"is_enabled" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *ButtonSetting) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
