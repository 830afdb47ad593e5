// pkg/cache/lru/lru_test.go
package lru

import (
	"testing"
	"time"
)

func TestLRU_Basic(t *testing.T) {
	cache := New[string, int](&Config{MaxSize: 100})
	defer cache.Close()

	cache.Set("key1", 100)
	val, ok := cache.Get("key1")
	if !ok {
		t.Error("expected key1 to exist")
	}
	if val != 100 {
		t.Errorf("expected 100, got %d", val)
	}

	_, ok = cache.Get("nonexistent")
	if ok {
		t.Error("expected nonexistent key to be absent")
	}

	cache.Delete("key1")
	_, ok = cache.Get("key1")
	if ok {
		t.Error("expected key1 to be deleted")
	}
}

func TestLRU_Eviction(t *testing.T) {
	cache := New[string, int](&Config{MaxSize: 3})
	defer cache.Close()

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	// 访问 a，使 b 成为最久未用
	cache.Get("a")
	cache.Set("d", 4)

	if _, ok := cache.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := cache.Get("a"); !ok {
		t.Error("expected a to survive")
	}
	if cache.Len() != 3 {
		t.Errorf("expected len 3, got %d", cache.Len())
	}
}

func TestLRU_TTL(t *testing.T) {
	cache := New[string, int](&Config{MaxSize: 10})
	defer cache.Close()

	cache.SetWithTTL("short", 1, 10*time.Millisecond)
	cache.Set("forever", 2)

	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.Get("short"); ok {
		t.Error("expected short to expire")
	}
	if _, ok := cache.Get("forever"); !ok {
		t.Error("expected forever to remain")
	}
}

func TestLRU_Keys(t *testing.T) {
	cache := New[string, int](&Config{MaxSize: 10})
	defer cache.Close()

	cache.Set("a", 1)
	cache.Set("b", 2)

	keys := cache.Keys()
	if len(keys) != 2 {
		t.Errorf("expected 2 keys, got %d", len(keys))
	}
}

func TestLRU_Clear(t *testing.T) {
	cache := New[string, int](&Config{MaxSize: 10})
	defer cache.Close()

	cache.Set("a", 1)
	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("expected empty cache, got len %d", cache.Len())
	}
}
