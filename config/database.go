package config

import (
	"fmt"

	"site-portal/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "site_portal"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: membuat tabel berdasarkan struct di folder model.
	// Unique index (employee_id, date) ikut terbentuk di sini.
	db.AutoMigrate(&model.Employee{})
	db.AutoMigrate(&model.AttendanceRecord{})
	db.AutoMigrate(&model.AppSetting{})
	db.AutoMigrate(&model.ButtonSetting{})
	db.AutoMigrate(&model.FieldCoordinator{})
	db.AutoMigrate(&model.FieldFacilitator{})

	DB = db
}
