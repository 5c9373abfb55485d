package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"aalsales/api"
	"aalsales/database"
	analyticsapp "aalsales/internal/analytics/application"
	"aalsales/internal/config"
	exportapp "aalsales/internal/export/application"
	reportapp "aalsales/internal/report/application"
	salesdomain "aalsales/internal/sales/domain"
	salesinfra "aalsales/internal/sales/infrastructure"
	shareddomain "aalsales/internal/shared/domain"
	sharedinfra "aalsales/internal/shared/infrastructure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Erreur de configuration:", err)
	}

	if err := database.Init(cfg.ConnString()); err != nil {
		log.Fatal("❌ Erreur connexion DB:", err)
	}
	defer database.Close()
	log.Println("✅ Connexion PostgreSQL établie")

	period, err := shareddomain.NewQuarterPeriod(cfg.Year, cfg.Quarter)
	if err != nil {
		log.Fatal("❌ Période invalide:", err)
	}

	// Cache shardé: les analyses sont lues bien plus souvent qu'écrites
	cache := sharedinfra.NewShardedCache(16)
	defer cache.Close()

	salesRepo := salesinfra.NewSalesQueryRepository(database.DB)
	loader := func() (*salesdomain.Dataset, error) {
		records, err := salesRepo.GetAll(period)
		if err != nil {
			return nil, err
		}
		return salesdomain.NewDataset(records), nil
	}

	analysisService := analyticsapp.NewAnalysisService(cache, cfg.CacheTTL)
	exportService := exportapp.NewExportService(analysisService)
	defer exportService.Cleanup()
	reportService := reportapp.NewReportService(analysisService, cfg.ReportDir)

	// Régénération périodique du rapport markdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresher := reportapp.NewRefresher(reportService, loader, period, cfg.RefreshInterval)
	go refresher.Start(ctx)

	handlers := api.NewHandlers(analysisService, exportService, reportService, loader, period)
	router := mux.NewRouter()
	handlers.RegisterRoutes(router)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Serveur démarré sur %s (période: %s)", cfg.HTTPAddr, period.Label())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Erreur serveur HTTP:", err)
		}
	}()

	// Arrêt propre sur SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Arrêt du serveur...")
	cancel()
	if err := server.Shutdown(context.Background()); err != nil {
		log.Println("Erreur lors de l'arrêt:", err)
	}
	log.Println("✅ Serveur arrêté")
}
