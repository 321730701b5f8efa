package aggregator

import (
	"fmt"
	"math"
	"time"

	"github.com/painel/painel-backend/internal/dashboard/domain"
	"github.com/painel/painel-backend/internal/dashboard/sampling"
)

// WorkJournal builds one entry per (employee, week) for weeks consecutive
// weeks starting at epoch. Base hours are drawn once per employee.
func (a *Aggregator) WorkJournal(employees []domain.Employee, weeks int, epoch time.Time) ([]domain.WorkJournalEntry, error) {
	if weeks < 0 {
		return nil, fmt.Errorf("weeks must not be negative, got %d", weeks)
	}

	start := time.Date(epoch.Year(), epoch.Month(), epoch.Day(), 0, 0, 0, 0, time.UTC)
	src := sampling.New(a.seed, sampling.StreamWorkJournal)
	entries := make([]domain.WorkJournalEntry, 0, len(employees)*weeks)

	for _, e := range employees {
		baseHours := int64(src.IntBetween(36, 43))
		field := a.catalog.IsFieldDepartment(e.Department)

		for w := 0; w < weeks; w++ {
			var overtime float64
			if field {
				overtime = src.Normal(4, 3)
			} else {
				overtime = src.Normal(2, 2)
			}
			absences := src.Normal(0.2, 0.6)

			entries = append(entries, domain.WorkJournalEntry{
				EmployeeID:    e.ID,
				Name:          e.Name,
				Department:    e.Department,
				WeekIndex:     int64(w + 1),
				Date:          start.AddDate(0, 0, 7*w),
				WeeklyHours:   baseHours,
				OvertimeHours: nonNegativeInt(overtime),
				Absences:      nonNegativeInt(absences),
			})
		}
	}

	return entries, nil
}

// nonNegativeInt truncates toward zero and floors the result at zero.
func nonNegativeInt(v float64) int64 {
	return max(0, int64(math.Trunc(v)))
}
