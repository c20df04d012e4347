package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/latencyglobe/internal/export"
	"github.com/talkincode/latencyglobe/internal/webserver"
)

func registerExportRoutes() {
	webserver.ApiGET("/export/xlsx", exportXlsx)
	webserver.ApiGET("/export/csv", exportCsv)
	webserver.ApiGET("/export/geojson", exportGeoJSON)
}

// exportXlsx downloads the filtered view as a workbook. The export path
// applies the realtime/historical time split the live view skips.
func exportXlsx(c echo.Context) error {
	now := time.Now()
	sess := GetSession(c)
	view := sess.ExportView(now)
	filter, _ := sess.Filter()

	var buf bytes.Buffer
	exporter := export.NewExcelExporter(GetCatalog(c))
	if err := exporter.WriteTo(&buf, view, filter, sess.Query(), now); err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED",
			"Failed to build workbook", err.Error())
	}

	setDownloadHeader(c, export.Filename(now, "xlsx"))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func exportCsv(c echo.Context) error {
	now := time.Now()
	view := GetSession(c).ExportView(now)

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, GetCatalog(c), view.Connections); err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED",
			"Failed to build CSV", err.Error())
	}

	setDownloadHeader(c, export.Filename(now, "csv"))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func exportGeoJSON(c echo.Context) error {
	now := time.Now()
	view := GetSession(c).ExportView(now)

	out, err := export.GeoJSON(view)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED",
			"Failed to build GeoJSON", err.Error())
	}

	setDownloadHeader(c, export.Filename(now, "geojson"))
	return c.Blob(http.StatusOK, "application/geo+json", out)
}

func setDownloadHeader(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
}
