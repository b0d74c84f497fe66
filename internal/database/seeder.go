package database

import (
	"log"

	"site-portal/internal/model"

	"gorm.io/gorm"
)

// SeedAll mengisi data default yang dibutuhkan portal saat pertama kali jalan.
// Aman dipanggil berulang (FirstOrCreate per key).
func SeedAll(db *gorm.DB) {
	// 1. Seed App Settings Default (foto header/roster/pembayaran)
	for key, value := range model.SettingDefaults {
		setting := model.AppSetting{SettingKey: key, SettingValue: value}
		db.FirstOrCreate(&setting, model.AppSetting{SettingKey: key})
	}

	// 2. Seed Tombol Layar Depan
	buttons := []model.ButtonSetting{
		{ButtonKey: "nms_app", ButtonName: "Aplikasi NMS", Category: model.ButtonCategoryHome, IsEnabled: true},
		{ButtonKey: "tkh_attendance", ButtonName: "Absensi Tenaga Kerja", Category: model.ButtonCategoryHome, IsEnabled: true},
		{ButtonKey: "employee_attendance", ButtonName: "Absensi Karyawan", Category: model.ButtonCategoryHome, IsEnabled: true},
		{ButtonKey: "ff_registration", ButtonName: "Daftar FF", Category: model.ButtonCategoryHome, IsEnabled: true},
		{ButtonKey: "payment_info", ButtonName: "Iuran dan Rincian", Category: model.ButtonCategoryHome, IsEnabled: true},
		{ButtonKey: "tkh_form", ButtonName: "Absensi TKH", Category: model.ButtonCategoryTKH, IsEnabled: true},
		{ButtonKey: "tkh_recap", ButtonName: "Rekap Absen TKH", Category: model.ButtonCategoryRecap, IsEnabled: true},
	}
	for _, b := range buttons {
		button := b
		db.FirstOrCreate(&button, model.ButtonSetting{ButtonKey: button.ButtonKey})
	}

	// 3. Seed Contoh Karyawan (hanya jika tabel masih kosong)
	var count int64
	db.Model(&model.Employee{}).Count(&count)
	if count == 0 {
		employees := []model.Employee{
			{Name: "Dian Wardana", Position: "Site Manager", Unit: "Citanduy"},
			{Name: "Asep Saepudin", Position: "Field Supervisor", Unit: "Citanduy", RequirePhotoDocumentation: true},
		}
		if err := db.Create(&employees).Error; err != nil {
			log.Println("Gagal seed karyawan contoh:", err)
		}
	}
}
