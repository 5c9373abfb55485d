package application

import (
	"fmt"
	"sync"
	"time"

	"aalsales/internal/analytics/domain"
	salesdomain "aalsales/internal/sales/domain"
	sharedinfra "aalsales/internal/shared/infrastructure"
)

// Analysis est le résultat complet d'une passe d'analyse sur un instantané:
// agrégats par état, par groupe et par créneau horaire, plus les statistiques
// descriptives des colonnes Sales et Unit.
type Analysis struct {
	recordCount  int
	stateBuckets *domain.BucketSet
	groupBuckets *domain.BucketSet
	timeBuckets  *domain.BucketSet
	salesSummary *domain.StatisticsSummary
	unitSummary  *domain.StatisticsSummary
}

// RecordCount retourne le nombre d'enregistrements analysés
func (a *Analysis) RecordCount() int {
	return a.recordCount
}

// StateBuckets retourne les agrégats par état
func (a *Analysis) StateBuckets() *domain.BucketSet {
	return a.stateBuckets
}

// GroupBuckets retourne les agrégats par groupe de clients
func (a *Analysis) GroupBuckets() *domain.BucketSet {
	return a.groupBuckets
}

// TimeBuckets retourne les agrégats par créneau horaire
func (a *Analysis) TimeBuckets() *domain.BucketSet {
	return a.timeBuckets
}

// SalesSummary retourne les statistiques descriptives de la colonne Sales
func (a *Analysis) SalesSummary() *domain.StatisticsSummary {
	return a.salesSummary
}

// UnitSummary retourne les statistiques descriptives de la colonne Unit
func (a *Analysis) UnitSummary() *domain.StatisticsSummary {
	return a.unitSummary
}

// TopStates retourne les n meilleurs états par chiffre d'affaires
func (a *Analysis) TopStates(n int) []domain.RankEntry {
	return domain.TopN(a.stateBuckets, n)
}

// BottomStates retourne les n états les plus faibles par chiffre d'affaires
func (a *Analysis) BottomStates(n int) []domain.RankEntry {
	return domain.BottomN(a.stateBuckets, n)
}

// GroupRanking retourne tous les groupes triés par chiffre d'affaires décroissant
func (a *Analysis) GroupRanking() []domain.RankEntry {
	return domain.RankedBySum(a.groupBuckets)
}

// PeakTimes retourne les n créneaux horaires de pointe par vente moyenne
func (a *Analysis) PeakTimes(n int) []domain.RankEntry {
	return domain.TopNByMean(a.timeBuckets, n)
}

// TotalSales retourne le chiffre d'affaires total
func (a *Analysis) TotalSales() float64 {
	return a.stateBuckets.TotalSum()
}

// AnalysisService calcule les analyses avec cache applicatif.
// Les cinq calculs (trois agrégations, deux résumés statistiques) sont
// indépendants: ils tournent dans des goroutines parallèles, chacun restant
// une passe séquentielle gauche-à-droite, donc le résultat est déterministe.
type AnalysisService struct {
	cache    sharedinfra.Cache
	cacheTTL time.Duration
}

// NewAnalysisService crée une nouvelle instance de AnalysisService
func NewAnalysisService(cache sharedinfra.Cache, cacheTTL time.Duration) *AnalysisService {
	return &AnalysisService{
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Analyze calcule (ou sert depuis le cache) l'analyse complète d'un dataset
func (s *AnalysisService) Analyze(dataset *salesdomain.Dataset) (*Analysis, error) {
	if dataset.IsEmpty() {
		return nil, domain.ErrEmptyInput
	}

	// Vérifier le cache en premier (hot path)
	cacheKey := s.buildCacheKey(dataset)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*Analysis), nil
	}

	analysis, err := s.compute(dataset)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, analysis, s.cacheTTL)
	return analysis, nil
}

// compute exécute les cinq calculs indépendants en parallèle
func (s *AnalysisService) compute(dataset *salesdomain.Dataset) (*Analysis, error) {
	records := dataset.Records()
	analysis := &Analysis{recordCount: len(records)}

	var wg sync.WaitGroup
	errChan := make(chan error, 5)

	// Agrégation par état
	wg.Add(1)
	go func() {
		defer wg.Done()
		set, err := domain.Aggregate(records, domain.ByState)
		if err != nil {
			errChan <- fmt.Errorf("state aggregation error: %w", err)
			return
		}
		analysis.stateBuckets = set
	}()

	// Agrégation par groupe de clients
	wg.Add(1)
	go func() {
		defer wg.Done()
		set, err := domain.Aggregate(records, domain.ByGroup)
		if err != nil {
			errChan <- fmt.Errorf("group aggregation error: %w", err)
			return
		}
		analysis.groupBuckets = set
	}()

	// Agrégation par créneau horaire
	wg.Add(1)
	go func() {
		defer wg.Done()
		set, err := domain.Aggregate(records, domain.ByTime)
		if err != nil {
			errChan <- fmt.Errorf("time aggregation error: %w", err)
			return
		}
		analysis.timeBuckets = set
	}()

	// Statistiques descriptives de la colonne Sales
	wg.Add(1)
	go func() {
		defer wg.Done()
		summary, err := domain.Summarize(dataset.SalesValues())
		if err != nil {
			errChan <- fmt.Errorf("sales summary error: %w", err)
			return
		}
		analysis.salesSummary = summary
	}()

	// Statistiques descriptives de la colonne Unit
	wg.Add(1)
	go func() {
		defer wg.Done()
		summary, err := domain.Summarize(dataset.UnitValues())
		if err != nil {
			errChan <- fmt.Errorf("unit summary error: %w", err)
			return
		}
		analysis.unitSummary = summary
	}()

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return analysis, nil
}

// buildCacheKey construit une clé à partir de l'empreinte du dataset.
// Taille + somme totale suffisent: l'instantané est immuable et une somme
// identique sur le même effectif désigne le même chargement en pratique.
func (s *AnalysisService) buildCacheKey(dataset *salesdomain.Dataset) string {
	return sharedinfra.NewCacheKeyBuilder().
		Add("analysis").
		AddInt(dataset.Len()).
		AddFloat(dataset.TotalSales()).
		Build()
}

// ClearCache vide tout le cache d'analyses
func (s *AnalysisService) ClearCache() {
	s.cache.Clear()
}
