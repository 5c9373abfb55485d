package application

import (
	"fmt"
	"os"
	"path/filepath"

	analyticsapp "aalsales/internal/analytics/application"
	"aalsales/internal/report/domain"
	salesdomain "aalsales/internal/sales/domain"
	shareddomain "aalsales/internal/shared/domain"
)

const reportFilename = "sales_report.md"

// ReportService construit le rapport d'analyse et l'écrit sur disque
type ReportService struct {
	analysisService *analyticsapp.AnalysisService
	outDir          string
}

// NewReportService crée une nouvelle instance de ReportService
func NewReportService(analysisService *analyticsapp.AnalysisService, outDir string) *ReportService {
	return &ReportService{
		analysisService: analysisService,
		outDir:          outDir,
	}
}

// Generate exécute l'analyse et assemble le rapport pour une période
func (s *ReportService) Generate(dataset *salesdomain.Dataset, period shareddomain.ReportPeriod) (*domain.Report, error) {
	analysis, err := s.analysisService.Analyze(dataset)
	if err != nil {
		return nil, fmt.Errorf("analysis error: %w", err)
	}

	return domain.NewReport(
		"AAL Sales Analysis Report",
		period,
		analysis.RecordCount(),
		analysis.StateBuckets().Len(),
		analysis.GroupBuckets().Len(),
		analysis.TopStates(3),
		analysis.BottomStates(3),
		analysis.GroupRanking(),
		analysis.PeakTimes(3),
		analysis.SalesSummary(),
	), nil
}

// Write rend le rapport en markdown et l'écrit dans le dossier de sortie.
// Retourne le chemin du fichier écrit.
func (s *ReportService) Write(report *domain.Report) (string, error) {
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(s.outDir, reportFilename)
	if err := os.WriteFile(path, RenderMarkdown(report), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
