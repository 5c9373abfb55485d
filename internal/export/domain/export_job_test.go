package domain

import (
	"strings"
	"testing"
	"time"

	salesdomain "aalsales/internal/sales/domain"
	shareddomain "aalsales/internal/shared/domain"
)

func testPeriod(t *testing.T) shareddomain.ReportPeriod {
	t.Helper()
	period, err := shareddomain.NewQuarterPeriod(2020, 4)
	if err != nil {
		t.Fatalf("NewQuarterPeriod failed: %v", err)
	}
	return period
}

// ========================================
// Tests: NewExportJob
// ========================================

// TestNewExportJob_Valid vérifie la création des combinaisons supportées
func TestNewExportJob_Valid(t *testing.T) {
	cases := []struct {
		format     ExportFormat
		exportType ExportType
		wantExt    string
	}{
		{ExportFormatCSV, ExportTypeSales, ".csv"},
		{ExportFormatCSV, ExportTypeStats, ".csv"},
		{ExportFormatParquet, ExportTypeSales, ".parquet"},
	}

	for _, c := range cases {
		job, err := NewExportJob(c.format, c.exportType, testPeriod(t))
		if err != nil {
			t.Fatalf("%s/%s: NewExportJob failed: %v", c.format, c.exportType, err)
		}
		if job.Format() != c.format || job.ExportType() != c.exportType {
			t.Errorf("job fields mismatch: %+v", job)
		}
		if !strings.HasSuffix(job.Filename(), c.wantExt) {
			t.Errorf("expected filename ending in %s, got %s", c.wantExt, job.Filename())
		}
		if !strings.HasPrefix(job.Filename(), string(c.exportType)+"_") {
			t.Errorf("expected filename prefixed by type, got %s", job.Filename())
		}
	}
}

// TestNewExportJob_Invalid vérifie le rejet des combinaisons invalides
func TestNewExportJob_Invalid(t *testing.T) {
	if _, err := NewExportJob("XML", ExportTypeSales, testPeriod(t)); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := NewExportJob(ExportFormatCSV, "everything", testPeriod(t)); err == nil {
		t.Error("expected error for unknown type")
	}
	if _, err := NewExportJob(ExportFormatParquet, ExportTypeStats, testPeriod(t)); err == nil {
		t.Error("expected error for stats+parquet")
	}
}

// TestNewExportJob_UniqueIDs vérifie que chaque job reçoit un identifiant distinct
func TestNewExportJob_UniqueIDs(t *testing.T) {
	a, _ := NewExportJob(ExportFormatCSV, ExportTypeSales, testPeriod(t))
	b, _ := NewExportJob(ExportFormatCSV, ExportTypeSales, testPeriod(t))

	if a.ID() == b.ID() {
		t.Error("expected distinct job IDs")
	}
}

// ========================================
// Tests: ToCSVRow
// ========================================

// TestToCSVRow vérifie le format des lignes d'export
func TestToCSVRow(t *testing.T) {
	date := time.Date(2020, 11, 15, 0, 0, 0, 0, time.UTC)
	record, err := salesdomain.NewSaleRecord(date, "Afternoon", "QLD", "Women", 12, 345.678)
	if err != nil {
		t.Fatalf("NewSaleRecord failed: %v", err)
	}

	row := ToCSVRow(record)
	want := []string{"2020-11-15", "Afternoon", "QLD", "Women", "12", "345.68"}

	if len(row) != len(CSVHeaders()) {
		t.Fatalf("row length %d does not match headers %d", len(row), len(CSVHeaders()))
	}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("column %d: expected %q, got %q", i, w, row[i])
		}
	}
}

// ========================================
// Benchmarks: ToCSVRow
// ========================================

// BenchmarkToCSVRow mesure la conversion d'un enregistrement en ligne CSV
func BenchmarkToCSVRow(b *testing.B) {
	date := time.Date(2020, 11, 15, 0, 0, 0, 0, time.UTC)
	record, err := salesdomain.NewSaleRecord(date, "Afternoon", "QLD", "Women", 12, 345.678)
	if err != nil {
		b.Fatalf("NewSaleRecord failed: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = ToCSVRow(record)
	}
}
