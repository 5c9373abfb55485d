package domain

// RawSaleRow représente une ligne brute telle que lue depuis le CSV,
// avant nettoyage. Les numériques manquants sont nil, les catégoriels
// manquants sont la chaîne vide.
type RawSaleRow struct {
	Date  string
	Time  string
	State string
	Group string
	Unit  *float64
	Sales *float64
}

// HasMissing vérifie si la ligne contient au moins une valeur manquante
func (r RawSaleRow) HasMissing() bool {
	return r.Unit == nil || r.Sales == nil ||
		r.Time == "" || r.State == "" || r.Group == "" || r.Date == ""
}
