package domain

import (
	"time"

	analyticsdomain "aalsales/internal/analytics/domain"
	shareddomain "aalsales/internal/shared/domain"
)

// Report représente le rapport d'analyse complet, prêt à être rendu.
// Construit une fois à partir d'une analyse, lecture seule ensuite.
type Report struct {
	title        string
	period       shareddomain.ReportPeriod
	generatedAt  time.Time
	recordCount  int
	stateCount   int
	groupCount   int
	topStates    []analyticsdomain.RankEntry
	bottomStates []analyticsdomain.RankEntry
	groupRanking []analyticsdomain.RankEntry
	peakTimes    []analyticsdomain.RankEntry
	salesSummary *analyticsdomain.StatisticsSummary
	figures      []Figure
}

// Figure référence un artefact de visualisation généré par la chaîne
// graphique (hors périmètre de ce service: on ne fait que les nommer).
type Figure struct {
	Title    string
	Filename string
}

// DefaultFigures retourne les visualisations produites par la chaîne graphique
func DefaultFigures() []Figure {
	return []Figure{
		{Title: "State-wise Sales Analysis", Filename: "state_wise_sales.png"},
		{Title: "Sales Distribution by Group", Filename: "group_sales.png"},
		{Title: "Sales Distribution by State", Filename: "sales_distribution.png"},
		{Title: "Time of Day Analysis", Filename: "time_of_day_sales.png"},
		{Title: "Unit vs Sales Relationship", Filename: "unit_sales_relationship.png"},
	}
}

// NewReport assemble un rapport à partir des résultats d'analyse
func NewReport(
	title string,
	period shareddomain.ReportPeriod,
	recordCount, stateCount, groupCount int,
	topStates, bottomStates, groupRanking, peakTimes []analyticsdomain.RankEntry,
	salesSummary *analyticsdomain.StatisticsSummary,
) *Report {
	return &Report{
		title:        title,
		period:       period,
		generatedAt:  time.Now(),
		recordCount:  recordCount,
		stateCount:   stateCount,
		groupCount:   groupCount,
		topStates:    topStates,
		bottomStates: bottomStates,
		groupRanking: groupRanking,
		peakTimes:    peakTimes,
		salesSummary: salesSummary,
		figures:      DefaultFigures(),
	}
}

// Title retourne le titre du rapport
func (r *Report) Title() string {
	return r.title
}

// Period retourne la période couverte
func (r *Report) Period() shareddomain.ReportPeriod {
	return r.period
}

// GeneratedAt retourne la date de génération
func (r *Report) GeneratedAt() time.Time {
	return r.generatedAt
}

// RecordCount retourne le nombre d'enregistrements analysés
func (r *Report) RecordCount() int {
	return r.recordCount
}

// StateCount retourne le nombre d'états analysés
func (r *Report) StateCount() int {
	return r.stateCount
}

// GroupCount retourne le nombre de groupes de clients
func (r *Report) GroupCount() int {
	return r.groupCount
}

// TopStates retourne les meilleurs états
func (r *Report) TopStates() []analyticsdomain.RankEntry {
	return append([]analyticsdomain.RankEntry{}, r.topStates...)
}

// BottomStates retourne les états les plus faibles
func (r *Report) BottomStates() []analyticsdomain.RankEntry {
	return append([]analyticsdomain.RankEntry{}, r.bottomStates...)
}

// GroupRanking retourne le classement des groupes de clients
func (r *Report) GroupRanking() []analyticsdomain.RankEntry {
	return append([]analyticsdomain.RankEntry{}, r.groupRanking...)
}

// PeakTimes retourne les créneaux horaires de pointe
func (r *Report) PeakTimes() []analyticsdomain.RankEntry {
	return append([]analyticsdomain.RankEntry{}, r.peakTimes...)
}

// SalesSummary retourne les statistiques descriptives des ventes
func (r *Report) SalesSummary() *analyticsdomain.StatisticsSummary {
	return r.salesSummary
}

// Figures retourne les visualisations référencées
func (r *Report) Figures() []Figure {
	return append([]Figure{}, r.figures...)
}
