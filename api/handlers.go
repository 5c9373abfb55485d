package api

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	analyticsapp "aalsales/internal/analytics/application"
	analyticsdomain "aalsales/internal/analytics/domain"
	exportapp "aalsales/internal/export/application"
	exportdomain "aalsales/internal/export/domain"
	reportapp "aalsales/internal/report/application"
	shareddomain "aalsales/internal/shared/domain"
)

// Handlers contient tous les handlers HTTP de l'API
type Handlers struct {
	analysisService *analyticsapp.AnalysisService
	exportService   *exportapp.ExportService
	reportService   *reportapp.ReportService
	loader          reportapp.DatasetLoader
	period          shareddomain.ReportPeriod
}

// NewHandlers crée une nouvelle instance des handlers
func NewHandlers(
	analysisService *analyticsapp.AnalysisService,
	exportService *exportapp.ExportService,
	reportService *reportapp.ReportService,
	loader reportapp.DatasetLoader,
	period shareddomain.ReportPeriod,
) *Handlers {
	return &Handlers{
		analysisService: analysisService,
		exportService:   exportService,
		reportService:   reportService,
		loader:          loader,
		period:          period,
	}
}

// RegisterRoutes enregistre toutes les routes sur le routeur
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", h.GetStats).Methods(http.MethodGet)
	r.HandleFunc("/api/report", h.GetReport).Methods(http.MethodGet)
	r.HandleFunc("/api/export/csv", h.ExportCSV).Methods(http.MethodGet)
	r.HandleFunc("/api/export/stats-csv", h.ExportStatsCSV).Methods(http.MethodGet)
	r.HandleFunc("/api/export/parquet", h.ExportParquet).Methods(http.MethodGet)
}

// Health handler pour GET /api/health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"period": h.period.Label(),
	})
}

// GetStats handler pour GET /api/stats
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	dataset, err := h.loader()
	if err != nil {
		log.Printf("Error loading dataset: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	analysis, err := h.analysisService.Analyze(dataset)
	if err != nil {
		if errors.Is(err, analyticsdomain.ErrEmptyInput) {
			http.Error(w, "No data available for the period", http.StatusNotFound)
			return
		}
		log.Printf("Error analyzing dataset: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	topN := queryInt(r, "top", 3)

	response := statsResponse{
		Period:       h.period.Label(),
		RecordCount:  analysis.RecordCount(),
		TotalSales:   round2(analysis.TotalSales()),
		SalesByState: bucketsToJSON(analysis.StateBuckets().Buckets()),
		SalesByGroup: bucketsToJSON(analysis.GroupBuckets().Buckets()),
		SalesByTime:  bucketsToJSON(analysis.TimeBuckets().Buckets()),
		TopStates:    rankingToJSON(analysis.TopStates(topN)),
		BottomStates: rankingToJSON(analysis.BottomStates(topN)),
		GroupRanking: rankingToJSON(analysis.GroupRanking()),
		PeakTimes:    rankingToJSON(analysis.PeakTimes(topN)),
		SalesSummary: summaryToJSON(analysis.SalesSummary()),
		UnitSummary:  summaryToJSON(analysis.UnitSummary()),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetReport handler pour GET /api/report — rend le rapport markdown
func (h *Handlers) GetReport(w http.ResponseWriter, r *http.Request) {
	dataset, err := h.loader()
	if err != nil {
		log.Printf("Error loading dataset: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	report, err := h.reportService.Generate(dataset, h.period)
	if err != nil {
		if errors.Is(err, analyticsdomain.ErrEmptyInput) {
			http.Error(w, "No data available for the period", http.StatusNotFound)
			return
		}
		log.Printf("Error generating report: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write(reportapp.RenderMarkdown(report))
}

// ExportCSV handler pour GET /api/export/csv
func (h *Handlers) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.runExport(w, exportdomain.ExportFormatCSV, exportdomain.ExportTypeSales, "text/csv")
}

// ExportStatsCSV handler pour GET /api/export/stats-csv
func (h *Handlers) ExportStatsCSV(w http.ResponseWriter, r *http.Request) {
	h.runExport(w, exportdomain.ExportFormatCSV, exportdomain.ExportTypeStats, "text/csv")
}

// ExportParquet handler pour GET /api/export/parquet
func (h *Handlers) ExportParquet(w http.ResponseWriter, r *http.Request) {
	h.runExport(w, exportdomain.ExportFormatParquet, exportdomain.ExportTypeSales, "application/octet-stream")
}

// runExport factorise le cycle commun des exports: job, chargement,
// exécution, en-têtes de téléchargement.
func (h *Handlers) runExport(
	w http.ResponseWriter,
	format exportdomain.ExportFormat,
	exportType exportdomain.ExportType,
	contentType string,
) {
	job, err := exportdomain.NewExportJob(format, exportType, h.period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dataset, err := h.loader()
	if err != nil {
		log.Printf("Error loading dataset: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data, err := h.exportService.Run(job, dataset)
	if err != nil {
		log.Printf("Error running export %s: %v", job.ID(), err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+job.Filename())
	w.Write(data)
}

// queryInt lit un paramètre de requête entier avec valeur par défaut
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// ---- DTOs JSON ----

type statsResponse struct {
	Period       string       `json:"period"`
	RecordCount  int          `json:"record_count"`
	TotalSales   float64      `json:"total_sales"`
	SalesByState []bucketJSON `json:"sales_by_state"`
	SalesByGroup []bucketJSON `json:"sales_by_group"`
	SalesByTime  []bucketJSON `json:"sales_by_time"`
	TopStates    []rankJSON   `json:"top_states"`
	BottomStates []rankJSON   `json:"bottom_states"`
	GroupRanking []rankJSON   `json:"group_ranking"`
	PeakTimes    []rankJSON   `json:"peak_times"`
	SalesSummary summaryJSON  `json:"sales_summary"`
	UnitSummary  summaryJSON  `json:"unit_summary"`
}

type bucketJSON struct {
	Key   string  `json:"key"`
	Sum   float64 `json:"sum"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
}

type rankJSON struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

type summaryJSON struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

func bucketsToJSON(buckets []*analyticsdomain.Bucket) []bucketJSON {
	out := make([]bucketJSON, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, bucketJSON{
			Key:   b.Key(),
			Sum:   round2(b.Sum()),
			Count: b.Count(),
			Mean:  round2(b.Mean()),
		})
	}
	return out
}

func rankingToJSON(entries []analyticsdomain.RankEntry) []rankJSON {
	out := make([]rankJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, rankJSON{Key: e.Key(), Value: round2(e.Value())})
	}
	return out
}

func summaryToJSON(s *analyticsdomain.StatisticsSummary) summaryJSON {
	return summaryJSON{
		Count:  s.Count(),
		Mean:   round2(s.Mean()),
		StdDev: round2(s.StdDev()),
		Min:    round2(s.Min()),
		P25:    round2(s.Percentile25()),
		Median: round2(s.Median()),
		P75:    round2(s.Percentile75()),
		Max:    round2(s.Max()),
	}
}

// round2 arrondit à deux décimales pour les réponses JSON
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
