package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := CacheKey("search", "golang backend")
		k2 := CacheKey("search", "golang backend")
		if k1 != k2 {
			t.Errorf("CacheKey not deterministic: %q != %q", k1, k2)
		}
	})

	t.Run("different inputs differ", func(t *testing.T) {
		k1 := CacheKey("search", "golang")
		k2 := CacheKey("search", "python")
		if k1 == k2 {
			t.Errorf("different inputs produced same key: %q", k1)
		}
	})

	t.Run("has prefix", func(t *testing.T) {
		k := CacheKey("test")
		if k[:3] != "jm:" {
			t.Errorf("expected jm: prefix, got %q", k[:3])
		}
	})
}

func newMemCache(t *testing.T, ttl time.Duration, maxEntries int) *TieredCache {
	t.Helper()
	c := NewTieredCache("", ttl, maxEntries, time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCacheGetSet(t *testing.T) {
	c := newMemCache(t, time.Minute, 100)
	ctx := context.Background()
	key := CacheKey("test", "round-trip")

	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected cache miss on empty cache")
	}

	c.Set(ctx, key, []byte("hello"))

	got, ok := c.Get(ctx, key)
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := newMemCache(t, time.Millisecond, 100)
	ctx := context.Background()
	key := CacheKey("test", "expiry")

	c.Set(ctx, key, []byte("temp"))
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected cache miss after TTL expiry")
	}
}

func TestCacheEviction(t *testing.T) {
	c := newMemCache(t, time.Minute, 3)
	ctx := context.Background()

	for i := range 5 {
		c.Set(ctx, CacheKey("evict", fmt.Sprintf("item-%d", i)), []byte(fmt.Sprintf("v%d", i)))
	}

	count := 0
	c.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count > 3 {
		t.Errorf("expected at most 3 entries after eviction, got %d", count)
	}
	if _, ok := c.Get(ctx, CacheKey("evict", "item-4")); !ok {
		t.Error("newest entry should survive eviction")
	}
}

func TestCacheStats(t *testing.T) {
	c := newMemCache(t, time.Minute, 100)
	cacheHits.Store(0)
	cacheMisses.Store(0)

	ctx := context.Background()
	key := CacheKey("stats", "test")

	c.Get(ctx, key)
	_, misses := CacheStats()
	if misses != 1 {
		t.Errorf("misses = %d, want 1", misses)
	}

	c.Set(ctx, key, []byte("x"))
	c.Get(ctx, key)

	hits, misses := CacheStats()
	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if misses != 1 {
		t.Errorf("misses = %d, want 1", misses)
	}
}

func TestCacheRedisL2(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	key := CacheKey("l2", "shared")

	writer := NewTieredCache("redis://"+mr.Addr(), time.Minute, 100, time.Minute)
	defer writer.Close()
	if writer.rdb == nil {
		t.Fatal("expected redis L2 to be connected")
	}
	writer.Set(ctx, key, []byte("payload"))

	if !mr.Exists(key) {
		t.Fatal("value was not written to redis")
	}
	if ttl := mr.TTL(key); ttl <= 0 || ttl > time.Minute {
		t.Errorf("redis TTL = %v, want (0, 1m]", ttl)
	}

	// A fresh cache has an empty L1 and must fall through to redis.
	reader := NewTieredCache("redis://"+mr.Addr(), time.Minute, 100, time.Minute)
	defer reader.Close()
	got, ok := reader.Get(ctx, key)
	if !ok || string(got) != "payload" {
		t.Fatalf("L2 get = %q, %v", got, ok)
	}
	if _, ok := reader.l1.Load(key); !ok {
		t.Error("L2 hit should populate L1")
	}
}

func TestCacheRedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	c := NewTieredCache("redis://"+addr, time.Minute, 100, time.Minute)
	defer c.Close()
	if c.rdb != nil {
		t.Fatal("unreachable redis should disable L2")
	}
	c.Set(context.Background(), "k", []byte("v"))
	if _, ok := c.Get(context.Background(), "k"); !ok {
		t.Error("L1 should still work without redis")
	}
}

func TestCacheInvalidRedisURL(t *testing.T) {
	c := NewTieredCache("not a url", time.Minute, 100, time.Minute)
	defer c.Close()
	if c.rdb != nil {
		t.Error("invalid URL should disable L2")
	}
}

type countingProvider struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *countingProvider) Search(_ context.Context, req SearchRequest) ([]ProviderResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return []ProviderResult{{ID: "1", Title: req.Query, URL: "https://jobs.example.com/1", Score: 0.8}}, nil
}

func TestCachingProvider(t *testing.T) {
	next := &countingProvider{}
	p := NewCachingProvider(next, newMemCache(t, time.Minute, 100))
	ctx := context.Background()
	req := SearchRequest{Query: "golang jobs", Mode: ModeBroad, ResultCap: 10}

	first, err := p.Search(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Search(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if next.calls != 1 {
		t.Errorf("provider calls = %d, want 1", next.calls)
	}
	if len(second) != 1 || second[0].Title != first[0].Title || second[0].Score != 0.8 {
		t.Errorf("cached results = %+v", second)
	}

	req.Mode = ModeExact
	if _, err := p.Search(ctx, req); err != nil {
		t.Fatal(err)
	}
	if next.calls != 2 {
		t.Errorf("different mode should miss: calls = %d", next.calls)
	}
}

func TestCachingProviderErrorsNotCached(t *testing.T) {
	boom := errors.New("boom")
	next := &countingProvider{err: boom}
	p := NewCachingProvider(next, newMemCache(t, time.Minute, 100))
	req := SearchRequest{Query: "rust jobs"}

	for range 2 {
		if _, err := p.Search(context.Background(), req); !errors.Is(err, boom) {
			t.Fatalf("err = %v, want boom", err)
		}
	}
	if next.calls != 2 {
		t.Errorf("errors must not be cached: calls = %d", next.calls)
	}
}

func TestSearchRequestKeyDayGranularity(t *testing.T) {
	morning := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	nextDay := morning.Add(24 * time.Hour)

	a := searchRequestKey(SearchRequest{Query: "q", PublishedAfter: morning})
	b := searchRequestKey(SearchRequest{Query: "q", PublishedAfter: evening})
	c := searchRequestKey(SearchRequest{Query: "q", PublishedAfter: nextDay})
	if a != b {
		t.Error("same day should share a key")
	}
	if a == c {
		t.Error("different day should change the key")
	}
}
