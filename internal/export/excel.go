// Package export renders the current derived view into downloadable
// documents: an xlsx workbook, a CSV connection table and a GeoJSON
// feature collection. All three operate on the same filtered inputs the
// dashboard renders, so a download always matches what the user sees.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"
	"github.com/talkincode/latencyglobe/internal/catalog"
	"github.com/talkincode/latencyglobe/internal/domain"
)

// ExcelExporter renders the filtered view into a four-sheet workbook:
// Exchanges, Cloud Regions, Latency Data and Filter Summary. Endpoint
// names in the latency sheet are resolved against the full catalog, not
// the filtered subset, so a connection kept by the filter never shows a
// bare id when its endpoint entity was filtered out of the entity sheets.
type ExcelExporter struct {
	catalog *catalog.Catalog
}

// NewExcelExporter builds an exporter over the given catalog
func NewExcelExporter(c *catalog.Catalog) *ExcelExporter {
	return &ExcelExporter{catalog: c}
}

// Filename returns the download filename for an export taken at ts
func Filename(ts time.Time, ext string) string {
	stamp := ts.UTC().Format("2006-01-02T15-04-05")
	return fmt.Sprintf("latency-topology-data-%s.%s", stamp, ext)
}

// WriteTo renders the workbook for one derived view and streams it to w
func (x *ExcelExporter) WriteTo(w io.Writer, view domain.DerivedView,
	filter domain.FilterState, query string, now time.Time) error {

	book := excelize.NewFile()
	book.SetSheetName("Sheet1", "Exchanges")

	x.writeExchanges(book, view.Exchanges)
	x.writeRegions(book, view.Regions)
	x.writeConnections(book, view.Connections)
	x.writeSummary(book, filter, query, now)

	return errors.Wrap(book.Write(w), "export: write workbook")
}

func (x *ExcelExporter) writeExchanges(book *excelize.File, exchanges []domain.Exchange) {
	const sheet = "Exchanges"
	writeRow(book, sheet, 1, "Exchange ID", "Name", "City", "Country",
		"Latitude", "Longitude", "Cloud Provider", "Region", "Server Count")
	for i, e := range exchanges {
		writeRow(book, sheet, i+2, e.ID, e.Name, e.Location.City, e.Location.Country,
			e.Location.Lat, e.Location.Lng, string(e.CloudProvider), e.Region, e.ServerCount)
	}
}

func (x *ExcelExporter) writeRegions(book *excelize.File, regions []domain.CloudRegion) {
	const sheet = "Cloud Regions"
	book.NewSheet(sheet)
	writeRow(book, sheet, 1, "Region ID", "Provider", "Name", "Code",
		"City", "Country", "Latitude", "Longitude", "Server Count")
	for i, r := range regions {
		writeRow(book, sheet, i+2, r.ID, string(r.Provider), r.Name, r.Code,
			r.Location.City, r.Location.Country, r.Location.Lat, r.Location.Lng, r.ServerCount)
	}
}

func (x *ExcelExporter) writeConnections(book *excelize.File, samples []domain.LatencySample) {
	const sheet = "Latency Data"
	book.NewSheet(sheet)
	writeRow(book, sheet, 1, "Connection ID", "From", "To", "Latency (ms)",
		"Connection Type", "Quality", "Timestamp", "Date", "Time")
	for i, s := range samples {
		ts := time.UnixMilli(s.Timestamp).UTC()
		writeRow(book, sheet, i+2,
			s.ID,
			x.entityName(s.FromID),
			x.entityName(s.ToID),
			s.LatencyMs,
			string(s.Kind),
			string(domain.ClassifyQuality(s.LatencyMs)),
			ts.Format(time.RFC3339),
			ts.Format("2006-01-02"),
			ts.Format("15:04:05"),
		)
	}
}

func (x *ExcelExporter) writeSummary(book *excelize.File,
	filter domain.FilterState, query string, now time.Time) {

	const sheet = "Filter Summary"
	book.NewSheet(sheet)
	writeRow(book, sheet, 1, "Filter", "Value")

	rows := [][2]string{
		{"Selected Exchanges", joinOrAll(filter.Exchanges)},
		{"Selected Cloud Providers", joinOrAll(providerStrings(filter.CloudProviders))},
		{"Latency Range (ms)", fmt.Sprintf("%g - %g", filter.LatencyRange.Min, filter.LatencyRange.Max)},
		{"Show Real-time", yesNo(filter.ShowRealtime)},
		{"Show Historical", yesNo(filter.ShowHistorical)},
		{"Show Regions", yesNo(filter.ShowRegions)},
		{"Search Query", orNone(query)},
		{"Export Date", now.UTC().Format(time.RFC3339)},
	}
	for i, r := range rows {
		writeRow(book, sheet, i+2, r[0], r[1])
	}
}

func (x *ExcelExporter) entityName(id string) string {
	if e, ok := x.catalog.Lookup(id); ok {
		return e.EntityName()
	}
	return id
}

func writeRow(book *excelize.File, sheet string, row int, cells ...interface{}) {
	for col, v := range cells {
		axis := fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row)
		book.SetCellValue(sheet, axis, v)
	}
}

func joinOrAll(values []string) string {
	if len(values) == 0 {
		return "All"
	}
	return strings.Join(values, ", ")
}

func providerStrings(providers []domain.CloudProvider) []string {
	out := make([]string, 0, len(providers))
	for _, p := range providers {
		out = append(out, string(p))
	}
	return out
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
