package export

import (
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/talkincode/latencyglobe/internal/catalog"
	"github.com/talkincode/latencyglobe/internal/domain"
)

// ConnectionRow is one CSV line of the filtered connection table
type ConnectionRow struct {
	ConnectionID string  `csv:"connection_id"`
	From         string  `csv:"from"`
	To           string  `csv:"to"`
	LatencyMs    float64 `csv:"latency_ms"`
	Kind         string  `csv:"connection_type"`
	Quality      string  `csv:"quality"`
	Timestamp    string  `csv:"timestamp"`
}

// WriteCSV renders the filtered connections as a CSV table. Endpoint names
// resolve against the full catalog, same as the workbook export.
func WriteCSV(w io.Writer, c *catalog.Catalog, samples []domain.LatencySample) error {
	rows := make([]ConnectionRow, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, ConnectionRow{
			ConnectionID: s.ID,
			From:         lookupName(c, s.FromID),
			To:           lookupName(c, s.ToID),
			LatencyMs:    s.LatencyMs,
			Kind:         string(s.Kind),
			Quality:      string(domain.ClassifyQuality(s.LatencyMs)),
			Timestamp:    time.UnixMilli(s.Timestamp).UTC().Format(time.RFC3339),
		})
	}
	return errors.Wrap(gocsv.Marshal(&rows, w), "export: write csv")
}

func lookupName(c *catalog.Catalog, id string) string {
	if e, ok := c.Lookup(id); ok {
		return e.EntityName()
	}
	return id
}
