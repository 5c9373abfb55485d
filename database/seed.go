package database

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	salesdomain "aalsales/internal/sales/domain"
	sharedinfra "aalsales/internal/shared/infrastructure"
)

const insertBatchSize = 500

// EnsureSchema crée la table sales si elle n'existe pas
func EnsureSchema() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS sales (
			id BIGSERIAL PRIMARY KEY,
			sale_date DATE NOT NULL,
			time_of_day VARCHAR(16) NOT NULL,
			state VARCHAR(8) NOT NULL,
			customer_group VARCHAR(16) NOT NULL,
			unit INTEGER NOT NULL,
			sales DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("create sales table: %w", err)
	}

	_, err = DB.Exec(`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(sale_date)`)
	if err != nil {
		return fmt.Errorf("create sales index: %w", err)
	}
	return nil
}

// TruncateSales vide la table sales avant un rechargement complet
func TruncateSales() error {
	_, err := DB.Exec(`TRUNCATE TABLE sales RESTART IDENTITY`)
	return err
}

// SeedSales insère les enregistrements par batches, dans une transaction
// par batch. L'ordre d'insertion préserve l'ordre du fichier source.
func SeedSales(records []salesdomain.SaleRecord) error {
	uow := sharedinfra.NewUnitOfWork(DB)

	inserted := 0
	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		err := uow.Execute(func(tx *sql.Tx) error {
			stmt, err := tx.Prepare(`
				INSERT INTO sales (sale_date, time_of_day, state, customer_group, unit, sales)
				VALUES ($1, $2, $3, $4, $5, $6)
			`)
			if err != nil {
				return err
			}
			defer stmt.Close()

			for _, r := range batch {
				_, err := stmt.Exec(
					r.Date(),
					string(r.TimeOfDay()),
					string(r.State()),
					string(r.Group()),
					r.Unit().Value(),
					r.Sales().Value(),
				)
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("insert batch %d-%d: %w", start+1, end, err)
		}

		inserted = end
		fmt.Printf("  %d/%d lignes insérées\n", inserted, len(records))
	}

	return nil
}

// GenerateQuarterRecords génère des ventes synthétiques pour un trimestre,
// pour les environnements sans le fichier CSV d'origine.
func GenerateQuarterRecords(year, quarter, perDay int) []salesdomain.SaleRecord {
	rng := rand.New(rand.NewSource(42))

	states := salesdomain.AllStates()
	groups := salesdomain.AllGroups()
	times := salesdomain.AllTimesOfDay()

	start := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	var records []salesdomain.SaleRecord
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		for i := 0; i < perDay; i++ {
			unit := 1 + rng.Intn(50)
			sales := float64(unit) * (5 + rng.Float64()*45)

			record, err := salesdomain.NewSaleRecord(
				day,
				string(times[rng.Intn(len(times))]),
				string(states[rng.Intn(len(states))]),
				string(groups[rng.Intn(len(groups))]),
				unit,
				sales,
			)
			if err != nil {
				// Les valeurs générées sont toujours dans les ensembles valides
				panic(err)
			}
			records = append(records, record)
		}
	}
	return records
}
