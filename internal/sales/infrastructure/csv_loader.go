package infrastructure

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"aalsales/internal/sales/domain"
)

// CSVLoader lit le fichier de ventes trimestriel AAL
// (colonnes attendues: Date, Time, State, Group, Unit, Sales).
type CSVLoader struct {
	path string
}

// NewCSVLoader crée un loader pour un chemin de fichier donné
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load lit toutes les lignes brutes du CSV. Les cellules vides deviennent
// des valeurs manquantes (nil / chaîne vide) pour le nettoyage aval.
func (l *CSVLoader) Load() ([]domain.RawSaleRow, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open sales file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []domain.RawSaleRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line+1, err)
		}
		line++

		row := domain.RawSaleRow{
			Date:  strings.TrimSpace(record[cols.date]),
			Time:  strings.TrimSpace(record[cols.timeOfDay]),
			State: strings.TrimSpace(record[cols.state]),
			Group: strings.TrimSpace(record[cols.group]),
		}

		row.Unit, err = parseOptionalFloat(record[cols.unit])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid Unit: %w", line, err)
		}
		row.Sales, err = parseOptionalFloat(record[cols.sales])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid Sales: %w", line, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// columnIndexes positions des colonnes attendues dans l'en-tête
type columnIndexes struct {
	date, timeOfDay, state, group, unit, sales int
}

func mapColumns(header []string) (columnIndexes, error) {
	idx := columnIndexes{date: -1, timeOfDay: -1, state: -1, group: -1, unit: -1, sales: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Date":
			idx.date = i
		case "Time":
			idx.timeOfDay = i
		case "State":
			idx.state = i
		case "Group":
			idx.group = i
		case "Unit":
			idx.unit = i
		case "Sales":
			idx.sales = i
		}
	}

	missing := []string{}
	for name, pos := range map[string]int{
		"Date": idx.date, "Time": idx.timeOfDay, "State": idx.state,
		"Group": idx.group, "Unit": idx.unit, "Sales": idx.sales,
	} {
		if pos < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("missing columns in header: %v", missing)
	}
	return idx, nil
}

// parseOptionalFloat convertit une cellule en float, nil si vide
func parseOptionalFloat(cell string) (*float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
