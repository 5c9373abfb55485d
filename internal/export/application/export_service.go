package application

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"aalsales/database"
	analyticsapp "aalsales/internal/analytics/application"
	"aalsales/internal/export/domain"
	salesdomain "aalsales/internal/sales/domain"
	sharedinfra "aalsales/internal/shared/infrastructure"
)

// ExportService produit les exports CSV et Parquet en mémoire
type ExportService struct {
	analysisService *analyticsapp.AnalysisService
	workerPool      *sharedinfra.WorkerPool
	batchSize       int
}

// NewExportService crée une nouvelle instance de ExportService
func NewExportService(analysisService *analyticsapp.AnalysisService) *ExportService {
	wp := sharedinfra.NewWorkerPool(4)
	wp.Start()

	return &ExportService{
		analysisService: analysisService,
		workerPool:      wp,
		batchSize:       1000,
	}
}

// Run exécute un job d'export sur un instantané et retourne le contenu
func (s *ExportService) Run(job *domain.ExportJob, dataset *salesdomain.Dataset) ([]byte, error) {
	switch {
	case job.ExportType() == domain.ExportTypeStats:
		return s.ExportStatsToCSV(dataset)
	case job.Format() == domain.ExportFormatParquet:
		return s.ExportSalesToParquet(dataset)
	default:
		return s.ExportSalesToCSV(dataset)
	}
}

// ExportSalesToCSV génère un CSV en mémoire contenant tous les
// enregistrements, dans l'ordre de chargement.
func (s *ExportService) ExportSalesToCSV(dataset *salesdomain.Dataset) ([]byte, error) {
	// Buffer pré-alloué pour éviter les réallocations successives
	buf := bytes.NewBuffer(make([]byte, 0, 1024*1024)) // 1 MB initial
	w := csv.NewWriter(buf)

	if err := w.Write(domain.CSVHeaders()); err != nil {
		return nil, err
	}

	for i, r := range dataset.Records() {
		if err := w.Write(domain.ToCSVRow(r)); err != nil {
			return nil, err
		}
		// Flush périodique pour limiter la pression mémoire du writer
		if (i+1)%s.batchSize == 0 {
			w.Flush()
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportStatsToCSV exporte les résultats d'analyse en CSV sectionné:
// statistiques globales, ventes par état, ventes par groupe.
func (s *ExportService) ExportStatsToCSV(dataset *salesdomain.Dataset) ([]byte, error) {
	analysis, err := s.analysisService.Analyze(dataset)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(make([]byte, 0, 64*1024)) // 64 KB
	w := csv.NewWriter(buf)

	summary := analysis.SalesSummary()
	w.Write([]string{"GLOBAL STATISTICS"})
	w.Write([]string{"Metric", "Value"})
	w.Write([]string{"Total Sales", strconv.FormatFloat(analysis.TotalSales(), 'f', 2, 64)})
	w.Write([]string{"Record Count", strconv.Itoa(summary.Count())})
	w.Write([]string{"Mean Sale", strconv.FormatFloat(summary.Mean(), 'f', 2, 64)})
	w.Write([]string{"Std Dev", strconv.FormatFloat(summary.StdDev(), 'f', 2, 64)})
	w.Write([]string{"Min", strconv.FormatFloat(summary.Min(), 'f', 2, 64)})
	w.Write([]string{"25th Percentile", strconv.FormatFloat(summary.Percentile25(), 'f', 2, 64)})
	w.Write([]string{"Median", strconv.FormatFloat(summary.Median(), 'f', 2, 64)})
	w.Write([]string{"75th Percentile", strconv.FormatFloat(summary.Percentile75(), 'f', 2, 64)})
	w.Write([]string{"Max", strconv.FormatFloat(summary.Max(), 'f', 2, 64)})
	w.Write([]string{})

	w.Write([]string{"SALES BY STATE"})
	w.Write([]string{"State", "Sales", "Records"})
	for _, b := range analysis.StateBuckets().Buckets() {
		w.Write([]string{
			b.Key(),
			strconv.FormatFloat(b.Sum(), 'f', 2, 64),
			strconv.Itoa(b.Count()),
		})
	}
	w.Write([]string{})

	w.Write([]string{"SALES BY CUSTOMER GROUP"})
	w.Write([]string{"Group", "Sales", "Records"})
	for _, b := range analysis.GroupBuckets().Buckets() {
		w.Write([]string{
			b.Key(),
			strconv.FormatFloat(b.Sum(), 'f', 2, 64),
			strconv.Itoa(b.Count()),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportSalesToParquet exporte les enregistrements en Parquet (compression
// snappy) dans un buffer mémoire. La conversion des lignes est répartie sur
// le worker pool par batches; l'écriture Parquet elle-même reste
// séquentielle, le writer n'étant pas sûr en concurrence.
func (s *ExportService) ExportSalesToParquet(dataset *salesdomain.Dataset) ([]byte, error) {
	records := dataset.Records()

	// Conversion parallèle: chaque batch remplit sa tranche de rows
	rows := make([]database.SaleParquet, len(records))
	err := s.workerPool.RunBatches(len(records), s.batchSize, func(start, end int) error {
		for i := start; i < end; i++ {
			r := records[i]
			rows[i] = database.SaleParquet{
				SaleDate:      r.Date().Format("2006-01-02"),
				TimeOfDay:     string(r.TimeOfDay()),
				State:         string(r.State()),
				CustomerGroup: string(r.Group()),
				Unit:          int32(r.Unit().Value()),
				Sales:         r.Sales().Value(),
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("convert rows: %w", err)
	}

	fw := buffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(database.SaleParquet), 2)
	if err != nil {
		return nil, fmt.Errorf("create parquet writer: %w", err)
	}
	pw.RowGroupSize = 128 * 1024 * 1024
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range rows {
		if err := pw.Write(rows[i]); err != nil {
			return nil, fmt.Errorf("write parquet row %d: %w", i+1, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("finalize parquet: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}

	return fw.Bytes(), nil
}

// Cleanup libère les ressources du service
func (s *ExportService) Cleanup() {
	if s.workerPool != nil {
		s.workerPool.Stop()
	}
}
