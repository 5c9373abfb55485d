package domain

import "sort"

// RankEntry représente une entrée classée par valeur agrégée
type RankEntry struct {
	key   string
	value float64
}

// NewRankEntry crée une entrée de classement
func NewRankEntry(key string, value float64) RankEntry {
	return RankEntry{key: key, value: value}
}

// Key retourne la valeur catégorielle
func (e RankEntry) Key() string {
	return e.key
}

// Value retourne la valeur de classement (somme ou moyenne)
func (e RankEntry) Value() float64 {
	return e.value
}

// TopN retourne les n premières catégories par somme décroissante.
// Tri stable: en cas d'égalité, l'ordre de première apparition est conservé.
// S'il y a moins de n catégories, toutes sont retournées.
func TopN(set *BucketSet, n int) []RankEntry {
	return rank(set, n, func(b *Bucket) float64 { return b.Sum() }, true)
}

// BottomN retourne les n dernières catégories par somme croissante
func BottomN(set *BucketSet, n int) []RankEntry {
	return rank(set, n, func(b *Bucket) float64 { return b.Sum() }, false)
}

// TopNByMean retourne les n premières catégories par moyenne décroissante
// (utilisé pour les créneaux horaires de pointe)
func TopNByMean(set *BucketSet, n int) []RankEntry {
	return rank(set, n, func(b *Bucket) float64 { return b.Mean() }, true)
}

// RankedBySum retourne toutes les catégories triées par somme décroissante
func RankedBySum(set *BucketSet) []RankEntry {
	return rank(set, set.Len(), func(b *Bucket) float64 { return b.Sum() }, true)
}

func rank(set *BucketSet, n int, value func(*Bucket) float64, descending bool) []RankEntry {
	entries := make([]RankEntry, 0, set.Len())
	for _, b := range set.Buckets() {
		entries = append(entries, RankEntry{key: b.Key(), value: value(b)})
	}

	// SliceStable et non Slice: les égalités gardent l'ordre d'insertion
	sort.SliceStable(entries, func(i, j int) bool {
		if descending {
			return entries[i].value > entries[j].value
		}
		return entries[i].value < entries[j].value
	})

	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
