package infrastructure

import (
	"fmt"
	"testing"
	"time"
)

// ========================================
// Tests: InMemoryCache
// ========================================

// TestInMemoryCache_SetGet vérifie le cycle de base set/get
func TestInMemoryCache_SetGet(t *testing.T) {
	cache := NewInMemoryCache()
	defer cache.Close()

	cache.Set("key1", "value1", 5*time.Minute)

	value, found := cache.Get("key1")
	if !found {
		t.Fatal("expected key1 to be found")
	}
	if value != "value1" {
		t.Errorf("expected value1, got %v", value)
	}
}

// TestInMemoryCache_Expiration vérifie qu'une entrée expirée n'est plus servie
func TestInMemoryCache_Expiration(t *testing.T) {
	cache := NewInMemoryCache()
	defer cache.Close()

	cache.Set("ephemeral", 42, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := cache.Get("ephemeral"); found {
		t.Error("expected expired entry to be gone")
	}
}

// TestInMemoryCache_DeleteClear vérifie la suppression et le vidage
func TestInMemoryCache_DeleteClear(t *testing.T) {
	cache := NewInMemoryCache()
	defer cache.Close()

	cache.Set("a", 1, time.Minute)
	cache.Set("b", 2, time.Minute)

	cache.Delete("a")
	if cache.Has("a") {
		t.Error("expected a to be deleted")
	}
	if !cache.Has("b") {
		t.Error("expected b to remain")
	}

	cache.Clear()
	if cache.Has("b") {
		t.Error("expected cache to be empty after Clear")
	}
}

// ========================================
// Tests: ShardedCache
// ========================================

// TestShardedCache_SetGet vérifie la répartition transparente sur les shards
func TestShardedCache_SetGet(t *testing.T) {
	cache := NewShardedCache(16)
	defer cache.Close()

	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("key%d", i), i, time.Minute)
	}

	for i := 0; i < 100; i++ {
		value, found := cache.Get(fmt.Sprintf("key%d", i))
		if !found {
			t.Fatalf("key%d not found", i)
		}
		if value != i {
			t.Errorf("key%d: expected %d, got %v", i, i, value)
		}
	}
}

// TestShardedCache_Clear vérifie le vidage de tous les shards
func TestShardedCache_Clear(t *testing.T) {
	cache := NewShardedCache(4)
	defer cache.Close()

	for i := 0; i < 50; i++ {
		cache.Set(fmt.Sprintf("key%d", i), i, time.Minute)
	}

	cache.Clear()

	for i := 0; i < 50; i++ {
		if cache.Has(fmt.Sprintf("key%d", i)) {
			t.Fatalf("key%d still present after Clear", i)
		}
	}
}

// TestShardedCache_InvalidShardCount vérifie le rejet d'un nombre de
// shards qui n'est pas une puissance de 2
func TestShardedCache_InvalidShardCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for shardCount=3")
		}
	}()
	NewShardedCache(3)
}

// ========================================
// Tests: CacheKeyBuilder
// ========================================

// TestCacheKeyBuilder vérifie la construction de clés composées
func TestCacheKeyBuilder(t *testing.T) {
	key := NewCacheKeyBuilder().
		Add("analysis").
		AddInt(5600).
		AddFloat(12345.678).
		Build()

	want := "analysis:5600:12345.68"
	if key != want {
		t.Errorf("expected %q, got %q", want, key)
	}
}

// TestCacheKeyBuilder_SinglePart vérifie l'absence de séparateur parasite
func TestCacheKeyBuilder_SinglePart(t *testing.T) {
	if key := NewCacheKeyBuilder().Add("solo").Build(); key != "solo" {
		t.Errorf("expected solo, got %q", key)
	}
}

// ========================================
// Benchmarks: Cache
// ========================================

// BenchmarkInMemoryCache_Get_NoContention teste Get sans contention
func BenchmarkInMemoryCache_Get_NoContention(b *testing.B) {
	cache := NewInMemoryCache()
	defer cache.Close()
	cache.Set("key1", "value1", 5*time.Minute)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = cache.Get("key1")
	}
}

// BenchmarkShardedCache_Get_HighContention teste Get parallèle sur 16 shards
func BenchmarkShardedCache_Get_HighContention(b *testing.B) {
	cache := NewShardedCache(16)
	defer cache.Close()
	for i := 0; i < 1000; i++ {
		cache.Set(fmt.Sprintf("key%d", i), i, 5*time.Minute)
	}

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = cache.Get(fmt.Sprintf("key%d", i%1000))
			i++
		}
	})
}

// BenchmarkCacheKeyBuilder mesure la construction d'une clé composée
func BenchmarkCacheKeyBuilder(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = NewCacheKeyBuilder().Add("analysis").AddInt(i).AddFloat(123.456).Build()
	}
}
