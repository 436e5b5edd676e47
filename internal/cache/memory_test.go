package cache

import (
	"testing"
	"time"
)

func jpeg(body string) Asset {
	return Asset{ContentType: "image/jpeg", Body: []byte(body)}
}

func TestMemoryCache_GetSet(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New memory cache: %v", err)
	}
	defer c.Close()

	// Miss
	asset, ok := c.Get("key1")
	if ok {
		t.Fatal("Expected miss for key1")
	}
	if asset.Body != nil || asset.ContentType != "" {
		t.Fatalf("Expected zero asset on miss, got %+v", asset)
	}

	// Set + hit
	c.Set("key1", jpeg("value1"))
	asset, ok = c.Get("key1")
	if !ok {
		t.Fatal("Expected hit for key1")
	}
	if string(asset.Body) != "value1" || asset.ContentType != "image/jpeg" {
		t.Fatalf("Unexpected asset: %+v", asset)
	}
}

func TestMemoryCache_Contains(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if c.Contains("absent") {
		t.Fatal("Expected absent key to not be contained")
	}

	c.Set("present", jpeg("data"))
	if !c.Contains("present") {
		t.Fatal("Expected present key to be contained")
	}
}

func TestMemoryCache_Overwrite(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("key", jpeg("first"))
	c.Set("key", Asset{ContentType: "image/png", Body: []byte("second")})
	asset, ok := c.Get("key")
	if !ok || string(asset.Body) != "second" || asset.ContentType != "image/png" {
		t.Fatalf("Expected overwritten asset, got %+v (%v)", asset, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("Expected Len 1, got %d", c.Len())
	}
}

func TestMemoryCache_LRUEviction(t *testing.T) {
	evicted := make(map[string]string)
	c, err := New("memory", ProviderConfig{
		Size: 2,
		TTL:  time.Hour,
		OnEvict: func(key string, asset Asset) {
			evicted[key] = string(asset.Body)
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("a", jpeg("1"))
	c.Set("b", jpeg("2"))
	c.Set("c", jpeg("3"))

	if _, ok := c.Get("a"); ok {
		t.Fatal("Expected oldest entry to be evicted")
	}
	if got := evicted["a"]; got != "1" {
		t.Fatalf("Expected eviction callback for a, got %v", evicted)
	}
	if c.Len() != 2 {
		t.Fatalf("Expected Len 2, got %d", c.Len())
	}
}
