package service

import (
	"math"
	"slices"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
)

// DefaultSalaryBins is the bin count of the salary histogram
const DefaultSalaryBins = 30

// FilterJournal keeps the entries of the given departments. A nil list keeps all.
func FilterJournal(entries []domain.WorkJournalEntry, departments []string) []domain.WorkJournalEntry {
	set := optionalSet(departments)
	out := make([]domain.WorkJournalEntry, 0)
	for _, e := range entries {
		if keep(set, e.Department) {
			out = append(out, e)
		}
	}
	return out
}

// OvertimeMonthlyMean averages overtime hours per calendar month of the
// entry date, in month order.
func OvertimeMonthlyMean(entries []domain.WorkJournalEntry) []domain.MonthlyValue {
	type acc struct {
		sum   int64
		count int
	}
	byMonth := make(map[time.Time]*acc)
	for _, e := range entries {
		m := domain.MonthStart(e.Date)
		a, ok := byMonth[m]
		if !ok {
			a = &acc{}
			byMonth[m] = a
		}
		a.sum += e.OvertimeHours
		a.count++
	}

	months := make([]time.Time, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	slices.SortFunc(months, func(a, b time.Time) int { return a.Compare(b) })

	series := make([]domain.MonthlyValue, 0, len(months))
	for _, m := range months {
		a := byMonth[m]
		series = append(series, domain.MonthlyValue{Month: m, Value: float64(a.sum) / float64(a.count)})
	}
	return series
}

// AbsencesByDepartment sums absences per department, in department order.
func AbsencesByDepartment(entries []domain.WorkJournalEntry) []domain.LabeledValue {
	totals := make(map[string]float64)
	for _, e := range entries {
		totals[e.Department] += float64(e.Absences)
	}

	out := make([]domain.LabeledValue, 0, len(totals))
	for _, d := range sortedKeys(totals) {
		out = append(out, domain.LabeledValue{Label: d, Value: totals[d]})
	}
	return out
}

// FilterEmployees keeps the employees of the given departments. A nil or
// empty list keeps all, as the staff listing starts unfiltered.
func FilterEmployees(employees []domain.Employee, departments []string) []domain.Employee {
	if len(departments) == 0 {
		return slices.Clone(employees)
	}
	set := toSet(departments)
	out := make([]domain.Employee, 0)
	for _, e := range employees {
		if keep(set, e.Department) {
			out = append(out, e)
		}
	}
	return out
}

// Departments returns the distinct departments of employees, sorted.
func Departments(employees []domain.Employee) []string {
	set := make(map[string]struct{})
	for _, e := range employees {
		set[e.Department] = struct{}{}
	}
	return sortedKeys(set)
}

// SalaryHistogram buckets salaries into bins of equal width between the
// lowest and the highest salary.
func SalaryHistogram(employees []domain.Employee, bins int) []domain.HistogramBin {
	out := make([]domain.HistogramBin, 0)
	if len(employees) == 0 || bins <= 0 {
		return out
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, e := range employees {
		lo = min(lo, e.Salary)
		hi = max(hi, e.Salary)
	}
	if lo == hi {
		return append(out, domain.HistogramBin{Lower: lo, Upper: hi, Count: len(employees)})
	}

	width := (hi - lo) / float64(bins)
	for i := 0; i < bins; i++ {
		out = append(out, domain.HistogramBin{Lower: lo + float64(i)*width, Upper: lo + float64(i+1)*width})
	}
	out[bins-1].Upper = hi

	for _, e := range employees {
		i := min(int((e.Salary-lo)/width), bins-1)
		out[i].Count++
	}
	return out
}

// SalaryByDepartment summarizes salaries per department, in department order.
func SalaryByDepartment(employees []domain.Employee) []domain.SalarySummary {
	byDept := make(map[string][]float64)
	for _, e := range employees {
		byDept[e.Department] = append(byDept[e.Department], e.Salary)
	}

	out := make([]domain.SalarySummary, 0, len(byDept))
	for _, d := range sortedKeys(byDept) {
		values := byDept[d]
		slices.Sort(values)
		out = append(out, domain.SalarySummary{
			Department: d,
			Count:      len(values),
			Min:        values[0],
			Q1:         quantile(values, 0.25),
			Median:     quantile(values, 0.5),
			Q3:         quantile(values, 0.75),
			Max:        values[len(values)-1],
		})
	}
	return out
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}
