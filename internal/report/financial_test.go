package report

import (
	"math"
	"sort"
	"testing"

	"clinic-backend/internal/models"
)

func financialSnap() Snapshot {
	return Snapshot{Patients: []models.Patient{
		testPatient("p1", "Omar", func(p *models.Patient) {
			p.PrimaryCare = models.SpecialtyPhysicalTherapy
			p.TreatmentHistory = []models.TreatmentLog{
				testLog(day(2026, 1, 10), 200, true),
				testLog(day(2026, 2, 5), 350, false),
			}
		}),
		testPatient("p2", "Layla", func(p *models.Patient) {
			p.PrimaryCare = models.SpecialtyNutrition
			p.TreatmentHistory = []models.TreatmentLog{
				testLog(day(2026, 2, 12), 150, true),
				// Outside any test window below.
				testLog(day(2025, 6, 1), 999, true),
			}
		}),
	}}
}

func TestFinancial_Totals(t *testing.T) {
	rep := mustGenerate(t, financialSnap(), windowReq(ReportFinancial, "2026-01-01", "2026-02-28"))
	data := rep.Data.(*FinancialReport)

	if data.TotalBilled != 700 {
		t.Errorf("TotalBilled = %v, want 700", data.TotalBilled)
	}
	if data.TotalPaid != 350 {
		t.Errorf("TotalPaid = %v, want 350", data.TotalPaid)
	}
	// The unpaid 350 log lands in outstanding even though it carries no
	// matching appointment anywhere.
	if data.TotalOutstanding != 350 {
		t.Errorf("TotalOutstanding = %v, want 350", data.TotalOutstanding)
	}
	if data.TotalPaid+data.TotalOutstanding != data.TotalBilled {
		t.Error("paid + outstanding must equal billed")
	}
}

func TestFinancial_CollectionRateExact(t *testing.T) {
	rep := mustGenerate(t, financialSnap(), windowReq(ReportFinancial, "2026-01-01", "2026-02-28"))
	data := rep.Data.(*FinancialReport)

	want := 350.0 / 700.0 * 100
	if math.Abs(data.CollectionRate-want) > 1e-9 {
		t.Errorf("CollectionRate = %v, want %v", data.CollectionRate, want)
	}
}

func TestFinancial_AverageTreatmentCost(t *testing.T) {
	rep := mustGenerate(t, financialSnap(), windowReq(ReportFinancial, "2026-01-01", "2026-02-28"))
	data := rep.Data.(*FinancialReport)

	want := 700.0 / 3.0
	if math.Abs(data.AverageTreatmentCost-want) > 1e-9 {
		t.Errorf("AverageTreatmentCost = %v, want %v", data.AverageTreatmentCost, want)
	}
}

func TestFinancial_EmptyWindowZeroRates(t *testing.T) {
	rep := mustGenerate(t, financialSnap(), windowReq(ReportFinancial, "2030-01-01", "2030-01-31"))
	data := rep.Data.(*FinancialReport)

	if data.TotalBilled != 0 || data.CollectionRate != 0 || data.AverageTreatmentCost != 0 {
		t.Errorf("empty window should compute zeros, got %+v", data)
	}
}

func TestFinancial_RevenueBySpecialtyPaidOnly(t *testing.T) {
	rep := mustGenerate(t, financialSnap(), windowReq(ReportFinancial, "2026-01-01", "2026-02-28"))
	data := rep.Data.(*FinancialReport)

	byName := map[string]float64{}
	for _, row := range data.RevenueBySpecialty {
		byName[row.Specialty] = row.Revenue
	}
	// The unpaid physical therapy log contributes nothing.
	if byName["Physical Therapy"] != 200 {
		t.Errorf("Physical Therapy revenue = %v, want 200", byName["Physical Therapy"])
	}
	if byName["Nutrition"] != 150 {
		t.Errorf("Nutrition revenue = %v, want 150", byName["Nutrition"])
	}
}

func TestFinancial_MonthlyRevenueSortedPaidOnly(t *testing.T) {
	rep := mustGenerate(t, financialSnap(), windowReq(ReportFinancial, "2026-01-01", "2026-02-28"))
	data := rep.Data.(*FinancialReport)

	months := make([]string, 0, len(data.MonthlyRevenue))
	total := 0.0
	for _, m := range data.MonthlyRevenue {
		months = append(months, m.Month)
		total += m.Revenue
	}
	if !sort.StringsAreSorted(months) {
		t.Errorf("revenue months not ascending: %v", months)
	}
	if total != data.TotalPaid {
		t.Errorf("monthly revenue sum %v != TotalPaid %v", total, data.TotalPaid)
	}
}

func TestFinancial_DayGranularWindow(t *testing.T) {
	// A log later in the day on the window's end date still counts.
	snap := Snapshot{Patients: []models.Patient{
		testPatient("p1", "Omar", func(p *models.Patient) {
			p.TreatmentHistory = []models.TreatmentLog{testLog(day(2026, 2, 28), 100, true)}
		}),
	}}
	rep := mustGenerate(t, snap, windowReq(ReportFinancial, "2026-02-01", "2026-02-28"))
	data := rep.Data.(*FinancialReport)
	if data.TotalBilled != 100 {
		t.Errorf("end-day log excluded: TotalBilled = %v", data.TotalBilled)
	}
}
