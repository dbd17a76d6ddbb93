package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Specialty codes shared by Doctor.Specialty and Patient.PrimaryCare.
const (
	SpecialtyGeneral         = "general"
	SpecialtyPhysicalTherapy = "physical_therapy"
	SpecialtyNutrition       = "nutrition"
)

type Doctor struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:30;not null" json:"specialty"`
	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	// Color is a display hex color assigned from the fixed palette when the
	// doctor is created (palette index = ordinal position mod palette size).
	Color     string    `gorm:"size:7" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

type CreateDoctorInput struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required,oneof=general physical_therapy nutrition"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
}
