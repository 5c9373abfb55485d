package domain

// Dataset représente un instantané immuable des enregistrements chargés.
// Toutes les analyses travaillent sur cet instantané, jamais sur la source.
type Dataset struct {
	records []SaleRecord
}

// NewDataset crée un Dataset à partir d'enregistrements validés
func NewDataset(records []SaleRecord) *Dataset {
	return &Dataset{records: append([]SaleRecord{}, records...)}
}

// Records retourne une copie des enregistrements
func (d *Dataset) Records() []SaleRecord {
	return append([]SaleRecord{}, d.records...)
}

// Len retourne le nombre d'enregistrements
func (d *Dataset) Len() int {
	return len(d.records)
}

// IsEmpty vérifie si le dataset est vide
func (d *Dataset) IsEmpty() bool {
	return len(d.records) == 0
}

// TotalSales retourne la somme des ventes, accumulée de gauche à droite
// pour garantir un résultat reproductible d'une exécution à l'autre.
func (d *Dataset) TotalSales() float64 {
	total := 0.0
	for _, r := range d.records {
		total += r.Sales().Value()
	}
	return total
}

// SalesValues retourne la colonne des montants, dans l'ordre de chargement
func (d *Dataset) SalesValues() []float64 {
	values := make([]float64, len(d.records))
	for i, r := range d.records {
		values[i] = r.Sales().Value()
	}
	return values
}

// UnitValues retourne la colonne des unités, dans l'ordre de chargement
func (d *Dataset) UnitValues() []float64 {
	values := make([]float64, len(d.records))
	for i, r := range d.records {
		values[i] = float64(r.Unit().Value())
	}
	return values
}

// DistinctStates retourne le nombre d'états présents dans le dataset
func (d *Dataset) DistinctStates() int {
	seen := make(map[State]struct{})
	for _, r := range d.records {
		seen[r.State()] = struct{}{}
	}
	return len(seen)
}

// DistinctGroups retourne le nombre de groupes de clients présents
func (d *Dataset) DistinctGroups() int {
	seen := make(map[CustomerGroup]struct{})
	for _, r := range d.records {
		seen[r.Group()] = struct{}{}
	}
	return len(seen)
}
