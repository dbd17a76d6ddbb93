package report

import (
	"sort"
	"time"
)

// demographicsReport aggregates patients whose creation timestamp falls in
// the window: gender split, age and BMI histograms, count by care category,
// and monthly growth.
func demographicsReport(snap Snapshot, start, end time.Time, now time.Time) *DemographicsReport {
	rep := &DemographicsReport{}

	ageCounts := map[string]int{}
	bmiCounts := map[string]int{}
	growth := map[string]int{}
	bySpecialty := map[string]int{}
	var specialtyOrder []string

	for i := range snap.Patients {
		p := &snap.Patients[i]
		if !inWindow(p.CreatedAt, start, end) {
			continue
		}
		rep.TotalPatients++

		switch p.Gender {
		case "male":
			rep.MalePatients++
		case "female":
			rep.FemalePatients++
		}

		if age, ok := AgeAt(p.DOB, now); ok && age >= 0 {
			ageCounts[ageBucket(age)]++
		}

		// Patients without usable height/weight are skipped, not bucketed.
		if bmi, ok := BMI(p.Height, p.Weight); ok {
			bmiCounts[bmiBucket(bmi)]++
		}

		growth[monthKey(p.CreatedAt)]++

		name := SpecialtyName(p.PrimaryCare)
		if _, seen := bySpecialty[name]; !seen {
			specialtyOrder = append(specialtyOrder, name)
		}
		bySpecialty[name]++
	}

	for _, label := range ageBucketLabels {
		rep.AgeDistribution = append(rep.AgeDistribution, LabelCount{Label: label, Count: ageCounts[label]})
	}
	for _, label := range bmiBucketLabels {
		rep.BMIDistribution = append(rep.BMIDistribution, LabelCount{Label: label, Count: bmiCounts[label]})
	}
	for _, name := range specialtyOrder {
		rep.PatientsBySpecialty = append(rep.PatientsBySpecialty, SpecialtyCount{Specialty: name, Count: bySpecialty[name]})
	}
	rep.PatientGrowthByMonth = sortedMonthCounts(growth)

	return rep
}

// sortedMonthCounts flattens a month-keyed counter ascending; YYYY-MM keys
// sort chronologically.
func sortedMonthCounts(m map[string]int) []MonthCount {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]MonthCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthCount{Month: k, Count: m[k]})
	}
	return out
}
