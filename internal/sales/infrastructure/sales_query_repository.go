package infrastructure

import (
	"database/sql"
	"fmt"
	"time"

	"aalsales/internal/sales/domain"
	shareddomain "aalsales/internal/shared/domain"
	sharedinfra "aalsales/internal/shared/infrastructure"
)

// SalesQueryRepository charge les enregistrements de ventes depuis PostgreSQL
type SalesQueryRepository struct {
	sharedinfra.BaseRepository
}

// NewSalesQueryRepository crée un nouveau repository de ventes
func NewSalesQueryRepository(db *sql.DB) *SalesQueryRepository {
	return &SalesQueryRepository{
		BaseRepository: sharedinfra.NewBaseRepository(db),
	}
}

// GetAll récupère tous les enregistrements d'une période, dans l'ordre
// d'insertion (id croissant) pour garantir une accumulation reproductible.
func (r *SalesQueryRepository) GetAll(period shareddomain.ReportPeriod) ([]domain.SaleRecord, error) {
	query := `
		SELECT sale_date, time_of_day, state, customer_group, unit, sales
		FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2
		ORDER BY id
	`

	rows, err := r.Query(query, period.Start(), period.End())
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	var records []domain.SaleRecord
	for rows.Next() {
		var (
			saleDate  time.Time
			timeOfDay string
			state     string
			group     string
			unit      int
			sales     float64
		)
		if err := rows.Scan(&saleDate, &timeOfDay, &state, &group, &unit, &sales); err != nil {
			return nil, fmt.Errorf("scan sale row: %w", err)
		}

		// La validation de domaine s'applique aussi aux lignes venant de la
		// base: une catégorie inconnue remonte une UnknownCategoryError.
		record, err := domain.NewSaleRecord(saleDate, timeOfDay, state, group, unit, sales)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}

	return records, nil
}

// CountAll retourne le nombre total d'enregistrements d'une période
func (r *SalesQueryRepository) CountAll(period shareddomain.ReportPeriod) (int, error) {
	var count int
	err := r.QueryRow(
		`SELECT COUNT(*) FROM sales WHERE sale_date >= $1 AND sale_date <= $2`,
		period.Start(), period.End(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return count, nil
}
