package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Hour)

	if err := c.Set("key1", "value1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get("key1")
	if !ok {
		t.Error("Expected cache hit")
	}
	if val != "value1" {
		t.Errorf("Expected 'value1', got %q", val)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(time.Hour)

	val, ok := c.Get("absent")
	if ok {
		t.Error("Expected cache miss")
	}
	if val != "" {
		t.Errorf("Expected empty string, got %q", val)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Millisecond)

	_ = c.Set("key1", "value1")
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("key1"); ok {
		t.Error("Expected expired entry to miss")
	}
	if len(c.Entries()) != 0 {
		t.Error("Expired entry should not be exported")
	}
}

func TestMemoryCache_NoTTL(t *testing.T) {
	c := NewMemoryCache(0)

	_ = c.Set("key1", "value1")
	time.Sleep(2 * time.Millisecond)

	if _, ok := c.Get("key1"); !ok {
		t.Error("Entries must not expire with zero TTL")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Hour)

	_ = c.Set("key1", "value1")
	_ = c.Set("key2", "value2")
	c.Clear()

	if _, ok := c.Get("key1"); ok {
		t.Error("Clear should remove all entries")
	}
	if len(c.Entries()) != 0 {
		t.Errorf("Entries after Clear = %v, want none", c.Entries())
	}
}

func TestMemoryCache_Overwrite(t *testing.T) {
	c := NewMemoryCache(time.Hour)

	_ = c.Set("key1", "old")
	_ = c.Set("key1", "new")

	val, _ := c.Get("key1")
	if val != "new" {
		t.Errorf("Expected 'new', got %q", val)
	}
}
