package cache

import (
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{"explicit", 8, 8},
		{"zero uses default", 0, DefaultCapacity},
		{"negative uses default", -3, DefaultCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[string, int](tt.capacity)
			if got := c.Capacity(); got != tt.want {
				t.Errorf("Capacity() = %d, want %d", got, tt.want)
			}
			if c.Len() != 0 {
				t.Errorf("Len() = %d, want 0", c.Len())
			}
		})
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}

	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after overwrite = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() = %+v, want 2 hits and 1 miss", s)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 10)
	c.Set(2, 20)

	// Touch 1 so 2 becomes the oldest.
	c.Get(1)
	c.Set(3, 30)

	if _, ok := c.Get(2); ok {
		t.Error("key 2 should have been evicted")
	}
	for _, k := range []int{1, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d should still be cached", k)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	for range 3 {
		if v := c.GetOrCreate("k", create); v != 42 {
			t.Fatalf("GetOrCreate = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set(9, 9)
	if v, ok := c.Get(9); !ok || v != 9 {
		t.Errorf("Get(9) after Clear = (%d, %v), want (9, true)", v, ok)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				k := (g + i) % 32
				if v := c.GetOrCreate(k, func() int { return k * 2 }); v != k*2 {
					t.Errorf("GetOrCreate(%d) = %d, want %d", k, v, k*2)
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() > c.Capacity() {
		t.Errorf("Len() = %d exceeds capacity %d", c.Len(), c.Capacity())
	}
}
