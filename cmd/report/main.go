package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsapp "aalsales/internal/analytics/application"
	"aalsales/internal/config"
	reportapp "aalsales/internal/report/application"
	salesapp "aalsales/internal/sales/application"
	salesdomain "aalsales/internal/sales/domain"
	salesinfra "aalsales/internal/sales/infrastructure"
	shareddomain "aalsales/internal/shared/domain"
	sharedinfra "aalsales/internal/shared/infrastructure"
)

// Pipeline CSV → nettoyage → analyse → rapport markdown, sans base de
// données. Mode "once" pour une génération unique, "scheduled" pour la
// régénération périodique.
func main() {
	mode := flag.String("mode", "once", "once | scheduled")
	csvPath := flag.String("csv", "", "chemin du fichier CSV (défaut: CSV_PATH)")
	outDir := flag.String("out", "", "dossier de sortie du rapport (défaut: REPORT_DIR)")
	normalize := flag.Bool("normalize", false, "normaliser la colonne Sales (min-max) avant analyse")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Erreur de configuration:", err)
	}
	if *csvPath == "" {
		*csvPath = cfg.CSVPath
	}
	if *outDir == "" {
		*outDir = cfg.ReportDir
	}

	period, err := shareddomain.NewQuarterPeriod(cfg.Year, cfg.Quarter)
	if err != nil {
		log.Fatal("❌ Période invalide:", err)
	}

	cache := sharedinfra.NewInMemoryCache()
	defer cache.Close()

	analysisService := analyticsapp.NewAnalysisService(cache, cfg.CacheTTL)
	reportService := reportapp.NewReportService(analysisService, *outDir)

	loader := csvLoader(*csvPath, *normalize)
	refresher := reportapp.NewRefresher(reportService, loader, period, cfg.RefreshInterval)

	switch *mode {
	case "once":
		start := time.Now()
		if err := refresher.RunOnce(); err != nil {
			log.Fatal("❌ Erreur de génération du rapport:", err)
		}
		fmt.Printf("✅ Rapport généré en %v\n", time.Since(start))

	case "scheduled":
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Première génération immédiate, puis régénérations planifiées
		if err := refresher.RunOnce(); err != nil {
			log.Fatal("❌ Erreur de génération du rapport:", err)
		}

		go func() {
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			<-sigChan
			cancel()
		}()

		refresher.Start(ctx)

	default:
		log.Fatalf("❌ Mode inconnu %q (attendu: once | scheduled)", *mode)
	}
}

// csvLoader construit un DatasetLoader rejouant le pipeline de chargement
// complet à chaque appel: lecture CSV, remplissage des manquants,
// validation, normalisation optionnelle.
func csvLoader(path string, normalize bool) reportapp.DatasetLoader {
	cleaner := salesapp.NewCleaningService()
	loader := salesinfra.NewCSVLoader(path)

	return func() (*salesdomain.Dataset, error) {
		rows, err := loader.Load()
		if err != nil {
			return nil, err
		}

		dataset, err := cleaner.BuildDataset(cleaner.FillMissing(rows))
		if err != nil {
			return nil, err
		}

		if normalize {
			return cleaner.NormalizeDataset(dataset)
		}
		return dataset, nil
	}
}
