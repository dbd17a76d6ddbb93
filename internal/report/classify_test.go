package report

import "testing"

func TestAgeAt(t *testing.T) {
	cases := []struct {
		name string
		dob  string
		want int
	}{
		{"birthday passed this year", "1990-01-15", 36},
		{"birthday not yet reached", "1990-12-01", 35},
		{"birthday today counts full year", "2000-06-15", 26},
		{"eighteen years minus one day", "2008-06-14", 18},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AgeAt(tc.dob, testNow)
			if !ok {
				t.Fatalf("AgeAt(%q) not ok", tc.dob)
			}
			if got != tc.want {
				t.Errorf("AgeAt(%q) = %d, want %d", tc.dob, got, tc.want)
			}
		})
	}
}

func TestAgeAt_InvalidDate(t *testing.T) {
	if _, ok := AgeAt("not-a-date", testNow); ok {
		t.Error("expected ok=false for unparseable date of birth")
	}
}

func TestAgeBucket_EighteenthBirthdayBoundary(t *testing.T) {
	// Born exactly 18 years before now minus one day: already 18, so the
	// 18-24 bucket, not 13-17.
	age, ok := AgeAt("2008-06-14", testNow)
	if !ok {
		t.Fatal("AgeAt not ok")
	}
	if got := ageBucket(age); got != "18-24" {
		t.Errorf("ageBucket(%d) = %q, want %q", age, got, "18-24")
	}
}

func TestBMIBucketBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{18.4999, bmiBucketLabels[0]},
		{18.5, bmiBucketLabels[1]},
		{24.9999, bmiBucketLabels[1]},
		{25, bmiBucketLabels[2]},
		{29.9999, bmiBucketLabels[2]},
		{30, bmiBucketLabels[3]},
	}
	for _, tc := range cases {
		if got := bmiBucket(tc.bmi); got != tc.want {
			t.Errorf("bmiBucket(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestBMI(t *testing.T) {
	bmi, ok := BMI(175, 70)
	if !ok {
		t.Fatal("BMI not ok for valid measurements")
	}
	if bmi < 22.8 || bmi > 22.9 {
		t.Errorf("BMI(175, 70) = %v, want ~22.86", bmi)
	}

	if _, ok := BMI(0, 70); ok {
		t.Error("expected ok=false for zero height")
	}
	if _, ok := BMI(175, -1); ok {
		t.Error("expected ok=false for negative weight")
	}
}

func TestPaletteColor(t *testing.T) {
	if PaletteColor(0) != DoctorColors[0] {
		t.Errorf("PaletteColor(0) = %s", PaletteColor(0))
	}
	if PaletteColor(len(DoctorColors)) != DoctorColors[0] {
		t.Error("palette should wrap at its size")
	}
	if PaletteColor(3) != PaletteColor(3+2*len(DoctorColors)) {
		t.Error("palette color must be deterministic under wrapping")
	}
}

func TestMonthKey(t *testing.T) {
	if got := monthKey(day(2026, 3, 7)); got != "2026-03" {
		t.Errorf("monthKey = %q, want 2026-03 (zero-padded)", got)
	}
}
