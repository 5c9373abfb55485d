package application

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	salesdomain "aalsales/internal/sales/domain"
	shareddomain "aalsales/internal/shared/domain"
)

// DatasetLoader fournit un instantané frais des enregistrements de ventes
type DatasetLoader func() (*salesdomain.Dataset, error)

// Refresher regénère le rapport à intervalle régulier: recharge les données,
// invalide le cache d'analyses, réécrit le fichier markdown.
type Refresher struct {
	reportService *ReportService
	loader        DatasetLoader
	period        shareddomain.ReportPeriod
	interval      time.Duration
}

// NewRefresher crée une nouvelle instance de Refresher
func NewRefresher(
	reportService *ReportService,
	loader DatasetLoader,
	period shareddomain.ReportPeriod,
	interval time.Duration,
) *Refresher {
	return &Refresher{
		reportService: reportService,
		loader:        loader,
		period:        period,
		interval:      interval,
	}
}

// RunOnce exécute un cycle complet de régénération
func (r *Refresher) RunOnce() error {
	start := time.Now()

	dataset, err := r.loader()
	if err != nil {
		return err
	}

	// Les données viennent peut-être de changer: on repart d'un cache vide
	r.reportService.analysisService.ClearCache()

	report, err := r.reportService.Generate(dataset, r.period)
	if err != nil {
		return err
	}

	path, err := r.reportService.Write(report)
	if err != nil {
		return err
	}

	log.Printf("[refresher] rapport regénéré: %s (%d enregistrements, %v)",
		path, report.RecordCount(), time.Since(start))
	return nil
}

// Start lance le planificateur et bloque jusqu'à l'annulation du contexte
func (r *Refresher) Start(ctx context.Context) {
	scheduler := gocron.NewScheduler(time.UTC)

	log.Printf("[refresher] démarrage du planificateur, intervalle %v", r.interval)

	_, err := scheduler.Every(r.interval).Do(func() {
		if err := r.RunOnce(); err != nil {
			log.Printf("[refresher] erreur de régénération: %v", err)
		}
	})
	if err != nil {
		log.Printf("[refresher] erreur de configuration du planificateur: %v", err)
		return
	}

	scheduler.StartAsync()

	<-ctx.Done()

	scheduler.Stop()
	log.Println("[refresher] planificateur arrêté")
}
