package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Snapshot is the JSON structure for cache export/import.
type Snapshot struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    map[string]string `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// snapshotVersion identifies the export format.
const snapshotVersion = "1.0"

// Export writes the cache contents to w in JSON format.
func Export(w io.Writer, c *MemoryCache, metadata map[string]string) error {
	snapshot := Snapshot{
		Version:    snapshotVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    c.Entries(),
		Metadata:   metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// Import reads a snapshot from r and loads its entries into dst. It
// returns the number of entries imported.
func Import(r io.Reader, dst ReportCache) (int, error) {
	var snapshot Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}

	imported := 0
	for key, value := range snapshot.Entries {
		if err := dst.Set(key, value); err != nil {
			continue
		}
		imported++
	}
	return imported, nil
}
