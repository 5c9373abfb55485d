package domain

import (
	"errors"
	"fmt"
	"time"
)

// ReportPeriod représente la période couverte par une analyse.
// Value Object immutable: valeurs fixées à la création, pas de setters.
type ReportPeriod struct {
	start time.Time
	end   time.Time
	label string
}

var quarterNames = [4]string{"First Quarter", "Second Quarter", "Third Quarter", "Fourth Quarter"}

// NewQuarterPeriod crée une ReportPeriod couvrant un trimestre calendaire
func NewQuarterPeriod(year, quarter int) (ReportPeriod, error) {
	if quarter < 1 || quarter > 4 {
		return ReportPeriod{}, errors.New("quarter must be between 1 and 4")
	}
	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	// Dernier jour du trimestre: premier jour du trimestre suivant moins une journée
	end := start.AddDate(0, 3, 0).Add(-24 * time.Hour)

	return ReportPeriod{
		start: start,
		end:   end,
		label: fmt.Sprintf("%s %d", quarterNames[quarter-1], year),
	}, nil
}

// NewPeriod crée une ReportPeriod arbitraire avec validation
func NewPeriod(start, end time.Time, label string) (ReportPeriod, error) {
	if end.Before(start) {
		return ReportPeriod{}, errors.New("period end cannot precede start")
	}
	return ReportPeriod{start: start, end: end, label: label}, nil
}

// Start retourne la date de début
func (p ReportPeriod) Start() time.Time {
	return p.start
}

// End retourne la date de fin
func (p ReportPeriod) End() time.Time {
	return p.end
}

// Label retourne le libellé humain de la période (ex: "Fourth Quarter 2020")
func (p ReportPeriod) Label() string {
	return p.label
}

// Contains vérifie si une date appartient à la période
func (p ReportPeriod) Contains(t time.Time) bool {
	return !t.Before(p.start) && !t.After(p.end)
}
