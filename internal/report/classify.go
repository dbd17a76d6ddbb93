package report

import (
	"time"

	"clinic-backend/internal/models"
)

// DoctorColors is the fixed display palette. Assignment is deterministic:
// palette index = ordinal position modulo palette size.
var DoctorColors = []string{
	"#3498db", "#e74c3c", "#9b59b6", "#2ecc71", "#f1c40f",
	"#1abc9c", "#e67e22", "#34495e", "#d35400", "#2980b9",
}

const fallbackColor = "#ccc"

const (
	deletedPatientLabel = "Deleted Patient"
	deletedDoctorLabel  = "Deleted Doctor"
)

// PaletteColor maps an ordinal position (e.g. the number of doctors already
// registered) to a palette color. Pure: no shared counters.
func PaletteColor(ordinal int) string {
	if ordinal < 0 {
		ordinal = -ordinal
	}
	return DoctorColors[ordinal%len(DoctorColors)]
}

// SpecialtyName maps a specialty code to its display label.
func SpecialtyName(code string) string {
	switch code {
	case models.SpecialtyPhysicalTherapy:
		return "Physical Therapy"
	case models.SpecialtyNutrition:
		return "Nutrition"
	case models.SpecialtyGeneral:
		return "General"
	}
	return code
}

// AgeAt computes full years between a YYYY-MM-DD birth date and now, counting
// a birthday not yet reached this year as one year less. ok is false when the
// date does not parse.
func AgeAt(dob string, now time.Time) (age int, ok bool) {
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0, false
	}
	age = now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, true
}

// Age bucket labels, in display order.
var ageBucketLabels = []string{"0-12", "13-17", "18-24", "25-34", "35-49", "50-64", "65+"}

func ageBucket(age int) string {
	switch {
	case age <= 12:
		return "0-12"
	case age <= 17:
		return "13-17"
	case age <= 24:
		return "18-24"
	case age <= 34:
		return "25-34"
	case age <= 49:
		return "35-49"
	case age <= 64:
		return "50-64"
	}
	return "65+"
}

// BMI bucket labels, in display order.
var bmiBucketLabels = []string{
	"Underweight (<18.5)",
	"Normal (18.5-24.9)",
	"Overweight (25-29.9)",
	"Obese (30+)",
}

// BMI computes weight(kg) / height(m)^2 from a height in centimeters. ok is
// false when either measurement is non-positive.
func BMI(heightCm, weightKg float64) (bmi float64, ok bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	m := heightCm / 100
	return weightKg / (m * m), true
}

// Boundaries are exactly <18.5, [18.5,25), [25,30), >=30.
func bmiBucket(bmi float64) string {
	switch {
	case bmi < 18.5:
		return bmiBucketLabels[0]
	case bmi < 25:
		return bmiBucketLabels[1]
	case bmi < 30:
		return bmiBucketLabels[2]
	}
	return bmiBucketLabels[3]
}

// monthKey formats a timestamp as a zero-padded YYYY-MM key; lexicographic
// order of these keys is chronological.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
