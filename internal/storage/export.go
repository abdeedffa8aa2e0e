package storage

import (
	"encoding/json"
	"os"
	"time"

	"github.com/flow-eng/joggerspan/internal/bridge"
)

type ExportData struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Assessment *bridge.Assessment `json:"assessment"`
	Times      []float64          `json:"times"`
	Ratios     []float64          `json:"amplitude_ratios"`
}

// ExportJSONStdout writes a stored assessment with its full trace to stdout.
func ExportJSONStdout(meta *RunMetadata, times, ratios []float64) error {
	data := ExportData{
		ID:         meta.ID,
		Timestamp:  meta.Timestamp,
		Assessment: meta.Assessment,
		Times:      times,
		Ratios:     ratios,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
