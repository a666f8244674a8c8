package cache

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestExportImport_RoundTrip(t *testing.T) {
	src := NewMemoryCache(time.Hour)
	_ = src.Set("hash1", `{"0":{"tags":"Missing tags"}}`)
	_ = src.Set("hash2", "")

	var buf bytes.Buffer
	if err := Export(&buf, src, map[string]string{"host": "ci"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snapshot); err != nil {
		t.Fatalf("Export produced invalid JSON: %v", err)
	}
	if snapshot.Version != snapshotVersion {
		t.Errorf("Version = %q, want %q", snapshot.Version, snapshotVersion)
	}
	if snapshot.Metadata["host"] != "ci" {
		t.Errorf("Metadata = %v, want host=ci", snapshot.Metadata)
	}

	dst := NewMemoryCache(time.Hour)
	imported, err := Import(&buf, dst)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imported != 2 {
		t.Errorf("imported = %d, want 2", imported)
	}

	val, ok := dst.Get("hash1")
	if !ok || val != `{"0":{"tags":"Missing tags"}}` {
		t.Errorf("hash1 = %q (ok=%v)", val, ok)
	}
	if _, ok := dst.Get("hash2"); !ok {
		t.Error("empty values should survive the round trip")
	}
}

func TestImport_InvalidJSON(t *testing.T) {
	dst := NewMemoryCache(time.Hour)

	_, err := Import(strings.NewReader("{not json"), dst)
	if err == nil {
		t.Fatal("Expected an error for malformed input")
	}
}

func TestExport_EmptyCache(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, NewMemoryCache(time.Hour), nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := NewMemoryCache(time.Hour)
	imported, err := Import(&buf, dst)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imported != 0 {
		t.Errorf("imported = %d, want 0", imported)
	}
}
