package domain

import (
	salesdomain "aalsales/internal/sales/domain"
)

// KeyFunc sélectionne la dimension de partitionnement d'un enregistrement
type KeyFunc func(r salesdomain.SaleRecord) string

// Sélecteurs pour les trois dimensions catégorielles du dataset
var (
	ByState = func(r salesdomain.SaleRecord) string { return string(r.State()) }
	ByGroup = func(r salesdomain.SaleRecord) string { return string(r.Group()) }
	ByTime  = func(r salesdomain.SaleRecord) string { return string(r.TimeOfDay()) }
)

// Bucket accumule la somme et le nombre de ventes pour une valeur catégorielle
type Bucket struct {
	key   string
	sum   float64
	count int
}

// Key retourne la valeur catégorielle du bucket
func (b *Bucket) Key() string {
	return b.key
}

// Sum retourne la somme des ventes du bucket
func (b *Bucket) Sum() float64 {
	return b.sum
}

// Count retourne le nombre d'enregistrements du bucket
func (b *Bucket) Count() int {
	return b.count
}

// Mean retourne la moyenne des ventes du bucket
func (b *Bucket) Mean() float64 {
	if b.count == 0 {
		return 0
	}
	return b.sum / float64(b.count)
}

// BucketSet est le résultat d'une agrégation: un bucket par valeur
// catégorielle rencontrée, dans l'ordre de première apparition.
type BucketSet struct {
	order   []string
	buckets map[string]*Bucket
}

// Aggregate partitionne les enregistrements selon le sélecteur de clé.
// Chaque enregistrement contribue à exactement un bucket. L'accumulation
// est strictement de gauche à droite: deux exécutions sur la même entrée
// produisent des sommes identiques au bit près.
func Aggregate(records []salesdomain.SaleRecord, key KeyFunc) (*BucketSet, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	set := &BucketSet{
		buckets: make(map[string]*Bucket),
	}

	for _, r := range records {
		k := key(r)
		b, exists := set.buckets[k]
		if !exists {
			b = &Bucket{key: k}
			set.buckets[k] = b
			set.order = append(set.order, k)
		}
		b.sum += r.Sales().Value()
		b.count++
	}

	return set, nil
}

// Keys retourne les valeurs catégorielles dans l'ordre de première apparition
func (s *BucketSet) Keys() []string {
	return append([]string{}, s.order...)
}

// Get retourne le bucket d'une valeur catégorielle
func (s *BucketSet) Get(key string) (*Bucket, bool) {
	b, ok := s.buckets[key]
	return b, ok
}

// Buckets retourne les buckets dans l'ordre de première apparition
func (s *BucketSet) Buckets() []*Bucket {
	result := make([]*Bucket, 0, len(s.order))
	for _, k := range s.order {
		result = append(result, s.buckets[k])
	}
	return result
}

// Len retourne le nombre de buckets
func (s *BucketSet) Len() int {
	return len(s.order)
}

// TotalSum retourne la somme de toutes les sommes de buckets.
// Invariant: égale à la somme totale des ventes quelle que soit la
// dimension de partitionnement (chaque partition couvre tout le dataset).
func (s *BucketSet) TotalSum() float64 {
	total := 0.0
	for _, k := range s.order {
		total += s.buckets[k].sum
	}
	return total
}
