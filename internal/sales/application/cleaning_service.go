package application

import (
	"fmt"
	"math"
	"time"

	"aalsales/internal/sales/domain"
)

// Formats de date rencontrés dans les extractions AAL
var dateLayouts = []string{"2006-01-02", "2-Jan-2006", "2-Jan-06", "02/01/2006"}

// CleaningService nettoie les lignes brutes avant construction du Dataset:
// numériques manquants remplacés par la moyenne de colonne, catégoriels
// manquants par le mode de colonne.
type CleaningService struct{}

// NewCleaningService crée une nouvelle instance de CleaningService
func NewCleaningService() *CleaningService {
	return &CleaningService{}
}

// MissingCount retourne le nombre de lignes avec au moins une valeur manquante
func (s *CleaningService) MissingCount(rows []domain.RawSaleRow) int {
	count := 0
	for _, r := range rows {
		if r.HasMissing() {
			count++
		}
	}
	return count
}

// FillMissing remplit les valeurs manquantes et retourne une copie des lignes.
// Les colonnes Unit et Sales reçoivent la moyenne des valeurs présentes,
// les colonnes catégorielles reçoivent la valeur la plus fréquente.
func (s *CleaningService) FillMissing(rows []domain.RawSaleRow) []domain.RawSaleRow {
	if len(rows) == 0 {
		return nil
	}

	unitMean := columnMean(rows, func(r domain.RawSaleRow) *float64 { return r.Unit })
	salesMean := columnMean(rows, func(r domain.RawSaleRow) *float64 { return r.Sales })

	dateMode := columnMode(rows, func(r domain.RawSaleRow) string { return r.Date })
	timeMode := columnMode(rows, func(r domain.RawSaleRow) string { return r.Time })
	stateMode := columnMode(rows, func(r domain.RawSaleRow) string { return r.State })
	groupMode := columnMode(rows, func(r domain.RawSaleRow) string { return r.Group })

	cleaned := make([]domain.RawSaleRow, len(rows))
	for i, r := range rows {
		if r.Unit == nil {
			u := unitMean
			r.Unit = &u
		}
		if r.Sales == nil {
			v := salesMean
			r.Sales = &v
		}
		if r.Date == "" {
			r.Date = dateMode
		}
		if r.Time == "" {
			r.Time = timeMode
		}
		if r.State == "" {
			r.State = stateMode
		}
		if r.Group == "" {
			r.Group = groupMode
		}
		cleaned[i] = r
	}
	return cleaned
}

// BuildDataset valide les lignes nettoyées et construit l'instantané.
// Toute catégorie inconnue remonte une UnknownCategoryError: on ne jette
// jamais une ligne silencieusement.
func (s *CleaningService) BuildDataset(rows []domain.RawSaleRow) (*domain.Dataset, error) {
	records := make([]domain.SaleRecord, 0, len(rows))
	for i, r := range rows {
		if r.Unit == nil || r.Sales == nil {
			return nil, fmt.Errorf("row %d: missing numeric value after cleaning", i+1)
		}

		date, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		// L'unité est un entier métier: la moyenne de remplissage est arrondie
		unit := int(math.Round(*r.Unit))

		record, err := domain.NewSaleRecord(date, r.Time, r.State, r.Group, unit, *r.Sales)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return domain.NewDataset(records), nil
}

// MinMaxScale normalise une série dans [0,1]. Série constante: tout à 0.
// Équivalent du MinMaxScaler appliqué par l'analyse d'origine.
func MinMaxScale(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	scaled := make([]float64, len(values))
	if max == min {
		return scaled
	}
	for i, v := range values {
		scaled[i] = (v - min) / (max - min)
	}
	return scaled
}

// NormalizeDataset retourne un nouveau dataset dont la colonne Sales est
// normalisée min-max. Les autres colonnes sont conservées telles quelles.
func (s *CleaningService) NormalizeDataset(d *domain.Dataset) (*domain.Dataset, error) {
	records := d.Records()
	scaled := MinMaxScale(d.SalesValues())

	normalized := make([]domain.SaleRecord, 0, len(records))
	for i, r := range records {
		record, err := domain.NewSaleRecord(
			r.Date(),
			string(r.TimeOfDay()),
			string(r.State()),
			string(r.Group()),
			r.Unit().Value(),
			scaled[i],
		)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, record)
	}
	return domain.NewDataset(normalized), nil
}

// columnMean calcule la moyenne des valeurs présentes d'une colonne numérique
func columnMean(rows []domain.RawSaleRow, col func(domain.RawSaleRow) *float64) float64 {
	sum := 0.0
	count := 0
	for _, r := range rows {
		if v := col(r); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// columnMode retourne la valeur non vide la plus fréquente d'une colonne
// catégorielle. Égalité: la première rencontrée gagne (déterministe).
func columnMode(rows []domain.RawSaleRow, col func(domain.RawSaleRow) string) string {
	counts := make(map[string]int)
	var order []string
	for _, r := range rows {
		v := col(r)
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	mode := ""
	best := 0
	for _, v := range order {
		if counts[v] > best {
			best = counts[v]
			mode = v
		}
	}
	return mode
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}
