package report

import (
	"sort"
	"time"
)

// financialReport aggregates treatment logs (flattened across all patients)
// whose calendar day falls in the window. Revenue attribution follows the
// owning patient's care category; revenue series count paid logs only.
func financialReport(snap Snapshot, start, end time.Time) *FinancialReport {
	rep := &FinancialReport{}

	bySpecialty := map[string]float64{}
	var specialtyOrder []string
	byMonth := map[string]float64{}
	logCount := 0

	for i := range snap.Patients {
		p := &snap.Patients[i]
		for j := range p.TreatmentHistory {
			log := &p.TreatmentHistory[j]
			// Day-granular: a log anywhere on the start or end day is in.
			day := time.Date(log.Date.Year(), log.Date.Month(), log.Date.Day(), 0, 0, 0, 0, log.Date.Location())
			if !inWindow(day, start, end) {
				continue
			}
			logCount++
			rep.TotalBilled += log.Cost
			if log.Paid {
				rep.TotalPaid += log.Cost

				name := SpecialtyName(p.PrimaryCare)
				if _, seen := bySpecialty[name]; !seen {
					specialtyOrder = append(specialtyOrder, name)
				}
				bySpecialty[name] += log.Cost
				byMonth[monthKey(log.Date)] += log.Cost
			} else {
				rep.TotalOutstanding += log.Cost
			}
		}
	}

	if logCount > 0 {
		rep.AverageTreatmentCost = rep.TotalBilled / float64(logCount)
	}
	// Guard the ratio: an empty billing period is a 0% rate, not an error.
	if rep.TotalBilled > 0 {
		rep.CollectionRate = rep.TotalPaid / rep.TotalBilled * 100
	}

	for _, name := range specialtyOrder {
		rep.RevenueBySpecialty = append(rep.RevenueBySpecialty, SpecialtyRevenue{Specialty: name, Revenue: bySpecialty[name]})
	}

	months := make([]string, 0, len(byMonth))
	for k := range byMonth {
		months = append(months, k)
	}
	sort.Strings(months)
	for _, k := range months {
		rep.MonthlyRevenue = append(rep.MonthlyRevenue, MonthRevenue{Month: k, Revenue: byMonth[k]})
	}

	return rep
}
