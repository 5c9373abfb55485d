package domain

import (
	"math"
	"sort"
)

// StatisticsSummary contient les statistiques descriptives d'une colonne
// numérique. Calculé une fois sur l'instantané complet, lecture seule ensuite.
type StatisticsSummary struct {
	count  int
	mean   float64
	stdDev float64
	min    float64
	p25    float64
	median float64
	p75    float64
	max    float64
}

// Summarize calcule les statistiques descriptives d'une série de valeurs:
// effectif, moyenne, écart-type échantillon (dénominateur n-1), min, max et
// quartiles par interpolation linéaire entre statistiques d'ordre (même
// convention que pandas describe()).
func Summarize(values []float64) (*StatisticsSummary, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	// Moyenne: accumulation de gauche à droite, reproductible
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	// Écart-type échantillon. Non défini pour n=1 (dénominateur n-1),
	// on retourne 0 dans ce cas.
	stdDev := 0.0
	if n > 1 {
		ss := 0.0
		for _, v := range values {
			d := v - mean
			ss += d * d
		}
		stdDev = math.Sqrt(ss / float64(n-1))
	}

	// Les quartiles exigent un tri: on copie pour ne pas muter l'entrée
	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)

	return &StatisticsSummary{
		count:  n,
		mean:   mean,
		stdDev: stdDev,
		min:    sorted[0],
		p25:    percentile(sorted, 0.25),
		median: percentile(sorted, 0.50),
		p75:    percentile(sorted, 0.75),
		max:    sorted[n-1],
	}, nil
}

// percentile calcule le percentile p (0..1) par interpolation linéaire.
// sorted doit être trié en ordre croissant et non vide.
// Position fractionnaire: pos = p·(n-1), puis interpolation entre les deux
// statistiques d'ordre encadrantes.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)

	if lo+1 >= n {
		return sorted[n-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Count retourne l'effectif
func (s *StatisticsSummary) Count() int {
	return s.count
}

// Mean retourne la moyenne arithmétique
func (s *StatisticsSummary) Mean() float64 {
	return s.mean
}

// StdDev retourne l'écart-type échantillon
func (s *StatisticsSummary) StdDev() float64 {
	return s.stdDev
}

// Min retourne la valeur minimale
func (s *StatisticsSummary) Min() float64 {
	return s.min
}

// Percentile25 retourne le premier quartile
func (s *StatisticsSummary) Percentile25() float64 {
	return s.p25
}

// Median retourne la médiane
func (s *StatisticsSummary) Median() float64 {
	return s.median
}

// Percentile75 retourne le troisième quartile
func (s *StatisticsSummary) Percentile75() float64 {
	return s.p75
}

// Max retourne la valeur maximale
func (s *StatisticsSummary) Max() float64 {
	return s.max
}
