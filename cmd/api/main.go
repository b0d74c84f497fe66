package main

import (
	"fmt"

	"site-portal/config"
	"site-portal/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	// Foto absensi (base64) bisa mendekati 1.5 MB setelah encoding
	app := fiber.New(fiber.Config{BodyLimit: 4 * 1024 * 1024})

	// Middleware Global
	app.Use(cors.New())   // Agar portal bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	routes.SetupAdminRoutes(app, config.DB)
	routes.SetupEmployeeRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupJournalRoutes(app, config.DB)
	routes.SetupSettingRoutes(app, config.DB)
	routes.SetupFacilitatorRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
