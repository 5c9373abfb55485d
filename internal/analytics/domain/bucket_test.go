package domain

import (
	"errors"
	"math"
	"testing"

	salesdomain "aalsales/internal/sales/domain"
	"aalsales/internal/testhelpers"
)

// ========================================
// Tests: Aggregate
// ========================================

// TestAggregate_InsertionOrder vérifie que les buckets suivent l'ordre
// de première apparition des catégories, pas l'ordre alphabétique
func TestAggregate_InsertionOrder(t *testing.T) {
	records := []salesdomain.SaleRecord{
		testhelpers.MustRecord(t, "2020-10-01", "Morning", "WA", "Men", 1, 10),
		testhelpers.MustRecord(t, "2020-10-01", "Morning", "NSW", "Men", 1, 20),
		testhelpers.MustRecord(t, "2020-10-01", "Morning", "WA", "Men", 1, 30),
		testhelpers.MustRecord(t, "2020-10-01", "Morning", "VIC", "Men", 1, 40),
	}

	set, err := Aggregate(records, ByState)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	want := []string{"WA", "NSW", "VIC"}
	got := set.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("bucket %d: expected %s, got %s", i, k, got[i])
		}
	}
}

// TestAggregate_SumsAndCounts vérifie l'accumulation par bucket
func TestAggregate_SumsAndCounts(t *testing.T) {
	records := []salesdomain.SaleRecord{
		testhelpers.MustRecord(t, "2020-10-01", "Morning", "WA", "Men", 1, 10),
		testhelpers.MustRecord(t, "2020-10-01", "Afternoon", "WA", "Women", 2, 30),
		testhelpers.MustRecord(t, "2020-10-02", "Evening", "NSW", "Kids", 3, 5.5),
	}

	set, err := Aggregate(records, ByState)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	wa, ok := set.Get("WA")
	if !ok {
		t.Fatal("expected WA bucket")
	}
	if wa.Sum() != 40 || wa.Count() != 2 {
		t.Errorf("WA: expected sum=40 count=2, got sum=%v count=%d", wa.Sum(), wa.Count())
	}
	if wa.Mean() != 20 {
		t.Errorf("WA: expected mean=20, got %v", wa.Mean())
	}

	nsw, _ := set.Get("NSW")
	if nsw.Sum() != 5.5 || nsw.Count() != 1 {
		t.Errorf("NSW: expected sum=5.5 count=1, got sum=%v count=%d", nsw.Sum(), nsw.Count())
	}
}

// TestAggregate_PartitionInvariant vérifie que la somme des buckets égale
// le total du dataset, quelle que soit la dimension de partitionnement
func TestAggregate_PartitionInvariant(t *testing.T) {
	dataset := testhelpers.UniformDataset(t, 500)
	records := dataset.Records()
	total := dataset.TotalSales()

	for name, key := range map[string]KeyFunc{
		"state": ByState,
		"group": ByGroup,
		"time":  ByTime,
	} {
		set, err := Aggregate(records, key)
		if err != nil {
			t.Fatalf("%s: Aggregate failed: %v", name, err)
		}
		if diff := math.Abs(set.TotalSum() - total); diff > 1e-9 {
			t.Errorf("%s: partition sum %v differs from total %v", name, set.TotalSum(), total)
		}

		counted := 0
		for _, b := range set.Buckets() {
			counted += b.Count()
		}
		if counted != len(records) {
			t.Errorf("%s: expected %d records across buckets, got %d", name, len(records), counted)
		}
	}
}

// TestAggregate_Deterministic vérifie que deux passes sur la même entrée
// produisent des sommes identiques au bit près
func TestAggregate_Deterministic(t *testing.T) {
	records := testhelpers.UniformDataset(t, 300).Records()

	first, err := Aggregate(records, ByGroup)
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	second, err := Aggregate(records, ByGroup)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}

	for _, k := range first.Keys() {
		a, _ := first.Get(k)
		b, ok := second.Get(k)
		if !ok {
			t.Fatalf("second pass missing bucket %s", k)
		}
		if a.Sum() != b.Sum() || a.Count() != b.Count() {
			t.Errorf("bucket %s differs between passes: (%v,%d) vs (%v,%d)",
				k, a.Sum(), a.Count(), b.Sum(), b.Count())
		}
	}
}

// TestAggregate_EmptyInput vérifie le refus d'une entrée vide
func TestAggregate_EmptyInput(t *testing.T) {
	_, err := Aggregate(nil, ByState)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

// ========================================
// Benchmarks: Aggregate
// ========================================

// BenchmarkAggregate_ByState mesure l'agrégation par état
func BenchmarkAggregate_ByState(b *testing.B) {
	records := testhelpers.UniformDataset(b, 10000).Records()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Aggregate(records, ByState)
	}
}

// BenchmarkBucketSet_TotalSum mesure la somme des buckets
func BenchmarkBucketSet_TotalSum(b *testing.B) {
	records := testhelpers.UniformDataset(b, 10000).Records()
	set, err := Aggregate(records, ByState)
	if err != nil {
		b.Fatalf("Aggregate failed: %v", err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = set.TotalSum()
	}
}
