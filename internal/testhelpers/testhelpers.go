package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	salesdomain "aalsales/internal/sales/domain"
)

// SetupTestDB initialise une connexion à la base de données de test
func SetupTestDB(tb testing.TB) *sql.DB {
	tb.Helper()

	_ = godotenv.Load("../../.env")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "aaluser"),
		getEnv("DB_PASSWORD", "aalpass"),
		getEnv("DB_NAME", "aaldb"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		tb.Fatalf("Failed to open database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		tb.Fatalf("Failed to ping database: %v", err)
	}

	return db
}

// SkipIfNoDatabase skip le test/benchmark si la DB n'est pas disponible
func SkipIfNoDatabase(tb testing.TB) {
	tb.Helper()

	_ = godotenv.Load("../../.env")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "aaluser"),
		getEnv("DB_PASSWORD", "aalpass"),
		getEnv("DB_NAME", "aaldb"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		tb.Skip("Database not available:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		tb.Skip("Database not available:", err)
	}
}

// getEnv récupère une variable d'environnement avec fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// MustRecord construit un SaleRecord valide ou fait échouer le test
func MustRecord(tb testing.TB, date, timeOfDay, state, group string, unit int, sales float64) salesdomain.SaleRecord {
	tb.Helper()

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		tb.Fatalf("invalid test date %q: %v", date, err)
	}
	record, err := salesdomain.NewSaleRecord(d, timeOfDay, state, group, unit, sales)
	if err != nil {
		tb.Fatalf("invalid test record: %v", err)
	}
	return record
}

// RankingFixtureDataset construit un petit dataset aux totaux connus:
//
//	VIC 635.97 > NSW 441.71 > SA 339.41 > QLD 210.50 > WA 180.25
//	Groupes: Men > Women > Kids > Seniors
func RankingFixtureDataset(tb testing.TB) *salesdomain.Dataset {
	tb.Helper()

	records := []salesdomain.SaleRecord{
		MustRecord(tb, "2020-10-01", "Morning", "VIC", "Men", 20, 400.00),
		MustRecord(tb, "2020-10-01", "Afternoon", "VIC", "Women", 12, 235.97),
		MustRecord(tb, "2020-10-02", "Morning", "NSW", "Men", 15, 300.00),
		MustRecord(tb, "2020-10-02", "Evening", "NSW", "Kids", 7, 141.71),
		MustRecord(tb, "2020-10-03", "Afternoon", "SA", "Women", 10, 200.00),
		MustRecord(tb, "2020-10-03", "Evening", "SA", "Kids", 6, 139.41),
		MustRecord(tb, "2020-10-04", "Morning", "QLD", "Men", 11, 210.50),
		MustRecord(tb, "2020-10-05", "Evening", "WA", "Seniors", 9, 180.25),
	}
	return salesdomain.NewDataset(records)
}

// UniformDataset génère n enregistrements répartis en rotation sur les
// états, groupes et créneaux valides, avec des montants croissants.
func UniformDataset(tb testing.TB, n int) *salesdomain.Dataset {
	tb.Helper()

	states := salesdomain.AllStates()
	groups := salesdomain.AllGroups()
	times := salesdomain.AllTimesOfDay()

	records := make([]salesdomain.SaleRecord, 0, n)
	base, _ := time.Parse("2006-01-02", "2020-10-01")
	for i := 0; i < n; i++ {
		record, err := salesdomain.NewSaleRecord(
			base.AddDate(0, 0, i%92),
			string(times[i%len(times)]),
			string(states[i%len(states)]),
			string(groups[i%len(groups)]),
			1+i%40,
			float64(10+i),
		)
		if err != nil {
			tb.Fatalf("invalid generated record: %v", err)
		}
		records = append(records, record)
	}
	return salesdomain.NewDataset(records)
}
