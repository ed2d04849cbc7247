package shader

import (
	"testing"
)

func TestCacheHit(t *testing.T) {
	c := NewCache(4)

	first, err := c.Compile(ScaleWGSL)
	skipIfUnsupported(t, err)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	second, err := c.Compile(ScaleWGSL)
	if err != nil {
		t.Fatalf("Compile() second call error = %v", err)
	}
	if &first[0] != &second[0] {
		t.Error("second Compile() should return the cached words")
	}

	stats := c.Stats()
	if stats.Len != 1 || stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Stats() = %+v, want {Len:1 Hits:1 Misses:1}", stats)
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(1)

	// Trailing whitespace changes the key without changing the program.
	a, b := ScaleWGSL, ScaleWGSL+"\n"
	_, err := c.Compile(a)
	skipIfUnsupported(t, err)
	if err != nil {
		t.Fatalf("Compile(a) error = %v", err)
	}
	if _, err := c.Compile(b); err != nil {
		t.Fatalf("Compile(b) error = %v", err)
	}
	if _, err := c.Compile(a); err != nil {
		t.Fatalf("Compile(a) again error = %v", err)
	}

	stats := c.Stats()
	if stats.Len != 1 {
		t.Errorf("Len = %d, want 1", stats.Len)
	}
	if stats.Misses != 3 || stats.Hits != 0 {
		t.Errorf("Stats() = %+v, want 3 misses and no hits", stats)
	}
}

func TestCacheSkipsFailures(t *testing.T) {
	c := NewCache(0)

	if _, err := c.Compile("not wgsl {"); err == nil {
		t.Fatal("Compile() of invalid source should fail")
	}
	if got := c.Stats().Len; got != 0 {
		t.Errorf("Len = %d after failed compile, want 0", got)
	}
	if c.limit != DefaultCacheSize {
		t.Errorf("limit = %d, want %d", c.limit, DefaultCacheSize)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(2)

	_, err := c.Compile(ScaleWGSL)
	skipIfUnsupported(t, err)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	c.Clear()

	stats := c.Stats()
	if stats.Len != 0 {
		t.Errorf("Len = %d after Clear, want 0", stats.Len)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want counters kept across Clear", stats.Misses)
	}
	if _, err := c.Compile(ScaleWGSL); err != nil {
		t.Fatalf("Compile() after Clear error = %v", err)
	}
	if got := c.Stats().Misses; got != 2 {
		t.Errorf("Misses = %d after Clear, want 2", got)
	}
}
