package main

import (
	"fmt"
	"log"
	"os"

	"aalsales/database"
	"aalsales/internal/config"
	salesapp "aalsales/internal/sales/application"
	salesdomain "aalsales/internal/sales/domain"
	salesinfra "aalsales/internal/sales/infrastructure"
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
	fmt.Println("✅ Connexion PostgreSQL établie")

	if err := database.EnsureSchema(); err != nil {
		log.Fatal("❌ Erreur création du schéma:", err)
	}
	if err := database.TruncateSales(); err != nil {
		log.Fatal("❌ Erreur de vidage de la table:", err)
	}

	records, err := loadRecords(cfg)
	if err != nil {
		log.Fatal("❌ Erreur de chargement des données:", err)
	}

	fmt.Println("🌱 Démarrage du seed de la base de données...")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	if err := database.SeedSales(records); err != nil {
		log.Fatal("❌ Erreur lors du seed:", err)
	}

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✅ Seed terminé: %d enregistrements insérés\n", len(records))
	fmt.Println()
	fmt.Println("Vous pouvez maintenant démarrer l'application avec:")
	fmt.Println("  go run main.go")
	fmt.Println()
	fmt.Println("Et tester les endpoints:")
	fmt.Println("  http://localhost:8080/api/stats")
	fmt.Println("  http://localhost:8080/api/report")
}

// loadRecords charge le CSV trimestriel s'il existe, sinon génère des
// ventes synthétiques pour pouvoir travailler sans le fichier d'origine.
func loadRecords(cfg config.Config) ([]salesdomain.SaleRecord, error) {
	if _, err := os.Stat(cfg.CSVPath); err != nil {
		fmt.Printf("⚠️  Fichier %s introuvable, génération de données synthétiques\n", cfg.CSVPath)
		return database.GenerateQuarterRecords(cfg.Year, cfg.Quarter, 20), nil
	}

	fmt.Printf("📄 Chargement de %s...\n", cfg.CSVPath)
	loader := salesinfra.NewCSVLoader(cfg.CSVPath)
	rows, err := loader.Load()
	if err != nil {
		return nil, err
	}

	cleaner := salesapp.NewCleaningService()
	if missing := cleaner.MissingCount(rows); missing > 0 {
		fmt.Printf("🧹 %d lignes incomplètes détectées, remplissage moyenne/mode\n", missing)
	}
	dataset, err := cleaner.BuildDataset(cleaner.FillMissing(rows))
	if err != nil {
		return nil, err
	}
	return dataset.Records(), nil
}
