package infrastructure

import (
	"errors"
	"sync/atomic"
	"testing"
)

// ========================================
// Tests: WorkerPool
// ========================================

// TestWorkerPool_SubmitAndWait vérifie que toutes les tâches soumises s'exécutent
func TestWorkerPool_SubmitAndWait(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()

	var counter int64
	for i := 0; i < 100; i++ {
		err := pool.Submit(func() error {
			atomic.AddInt64(&counter, 1)
			return nil
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	pool.Wait()

	if counter != 100 {
		t.Errorf("expected 100 executed tasks, got %d", counter)
	}
}

// TestWorkerPool_SubmitAfterStop vérifie le refus de tâches après arrêt
func TestWorkerPool_SubmitAfterStop(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	pool.Stop()

	if err := pool.Submit(func() error { return nil }); err == nil {
		t.Error("expected error when submitting to stopped pool")
	}
}

// ========================================
// Tests: RunBatches
// ========================================

// TestRunBatches_CoversAllIndexes vérifie que chaque index est traité
// exactement une fois
func TestRunBatches_CoversAllIndexes(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	const n = 1037 // non multiple de la taille de batch
	visits := make([]int64, n)

	err := pool.RunBatches(n, 100, func(start, end int) error {
		for i := start; i < end; i++ {
			atomic.AddInt64(&visits[i], 1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunBatches failed: %v", err)
	}

	for i, v := range visits {
		if v != 1 {
			t.Fatalf("index %d visited %d times", i, v)
		}
	}
}

// TestRunBatches_PropagatesError vérifie la remontée d'une erreur de batch
func TestRunBatches_PropagatesError(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	wantErr := errors.New("batch failure")
	err := pool.RunBatches(500, 50, func(start, end int) error {
		if start == 200 {
			return wantErr
		}
		return nil
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("expected batch failure, got %v", err)
	}
}

// TestRunBatches_Empty vérifie le cas n=0
func TestRunBatches_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Stop()

	err := pool.RunBatches(0, 100, func(start, end int) error {
		t.Error("callback should not run for empty input")
		return nil
	})
	if err != nil {
		t.Errorf("expected nil error for empty input, got %v", err)
	}
}

// ========================================
// Benchmarks: WorkerPool
// ========================================

// BenchmarkRunBatches mesure le traitement par batches de 10000 éléments
func BenchmarkRunBatches(b *testing.B) {
	pool := NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	data := make([]float64, 10000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = pool.RunBatches(len(data), 1000, func(start, end int) error {
			for j := start; j < end; j++ {
				data[j] = float64(j) * 1.5
			}
			return nil
		})
	}
}
