package application

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	analyticsapp "aalsales/internal/analytics/application"
	salesdomain "aalsales/internal/sales/domain"
	shareddomain "aalsales/internal/shared/domain"
	sharedinfra "aalsales/internal/shared/infrastructure"
	"aalsales/internal/testhelpers"
)

func newTestReportService(t *testing.T, outDir string) *ReportService {
	t.Helper()
	cache := sharedinfra.NewInMemoryCache()
	t.Cleanup(cache.Close)
	return NewReportService(analyticsapp.NewAnalysisService(cache, 5*time.Minute), outDir)
}

func q4Period(t *testing.T) shareddomain.ReportPeriod {
	t.Helper()
	period, err := shareddomain.NewQuarterPeriod(2020, 4)
	if err != nil {
		t.Fatalf("NewQuarterPeriod failed: %v", err)
	}
	return period
}

// ========================================
// Tests: Generate / RenderMarkdown
// ========================================

// TestGenerate_ReportContent vérifie le contenu du rapport sur le dataset
// de référence
func TestGenerate_ReportContent(t *testing.T) {
	service := newTestReportService(t, t.TempDir())
	dataset := testhelpers.RankingFixtureDataset(t)

	report, err := service.Generate(dataset, q4Period(t))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if report.Title() != "AAL Sales Analysis Report" {
		t.Errorf("unexpected title: %s", report.Title())
	}
	if report.RecordCount() != dataset.Len() {
		t.Errorf("expected %d records, got %d", dataset.Len(), report.RecordCount())
	}
	if len(report.Figures()) != 5 {
		t.Errorf("expected 5 figures, got %d", len(report.Figures()))
	}

	markdown := string(RenderMarkdown(report))

	wantFragments := []string{
		"# AAL Sales Analysis Report",
		"## Executive Summary",
		"fourth quarter 2020",
		"## Data Overview",
		"- Time Period: Fourth Quarter 2020",
		"#### Top Performing States:",
		"| VIC | 635.97 |",
		"| NSW | 441.71 |",
		"| SA | 339.41 |",
		"#### Lowest Performing States:",
		"### Customer Group Analysis",
		"| Men | 910.50 |",
		"### Peak Sales Times",
		"## Recommendations",
		"## Statistical Analysis",
		"| 50% |",
		"## Visualizations",
		"1. State-wise Sales Analysis",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(markdown, fragment) {
			t.Errorf("rendered report missing %q", fragment)
		}
	}
}

// TestGenerate_GroupOrder vérifie que le classement rendu va du meilleur
// groupe au plus faible
func TestGenerate_GroupOrder(t *testing.T) {
	service := newTestReportService(t, t.TempDir())

	report, err := service.Generate(testhelpers.RankingFixtureDataset(t), q4Period(t))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	markdown := string(RenderMarkdown(report))
	menIdx := strings.Index(markdown, "| Men |")
	seniorsIdx := strings.Index(markdown, "| Seniors |")
	if menIdx == -1 || seniorsIdx == -1 || menIdx > seniorsIdx {
		t.Error("expected Men before Seniors in group ranking")
	}
}

// ========================================
// Tests: Write
// ========================================

// TestWrite_CreatesFile vérifie l'écriture du rapport sur disque
func TestWrite_CreatesFile(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "reports")
	service := newTestReportService(t, outDir)

	report, err := service.Generate(testhelpers.RankingFixtureDataset(t), q4Period(t))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	path, err := service.Write(report)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if filepath.Base(path) != "sales_report.md" {
		t.Errorf("unexpected report filename: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written report: %v", err)
	}
	if !strings.Contains(string(content), "# AAL Sales Analysis Report") {
		t.Error("written file missing report title")
	}
}

// TestRefresher_RunOnce vérifie le cycle complet de régénération
func TestRefresher_RunOnce(t *testing.T) {
	outDir := t.TempDir()
	service := newTestReportService(t, outDir)

	loader := func() (*salesdomain.Dataset, error) {
		return testhelpers.RankingFixtureDataset(t), nil
	}
	refresher := NewRefresher(service, loader, q4Period(t), time.Minute)

	if err := refresher.RunOnce(); err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "sales_report.md")); err != nil {
		t.Errorf("expected report file after RunOnce: %v", err)
	}
}
