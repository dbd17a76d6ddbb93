package config

import (
	"fmt"
	"log"
	"os"

	"clinic-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnectDB opens the MySQL connection and migrates the schema.
func ConnectDB() {
	user := envOr("DB_USER", "root")
	pass := envOr("DB_PASS", "")
	host := envOr("DB_HOST", "127.0.0.1")
	port := envOr("DB_PORT", "3306")
	name := envOr("DB_NAME", "clinic")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.TreatmentLog{},
		&models.Doctor{},
		&models.Appointment{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	DB = db
}
