// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"mccmnc-server/commons"

	"github.com/labstack/echo/v4"
)

// GetDatasetFileHandler godoc
// @Summary      Download the dataset
// @Description  Serves the generated record list ("mcc-mnc-list") or status list ("status-codes") as JSON.
// @Tags         dataset
// @Produce      json
// @Param        name  path  string  true  "Dataset name"  Enums(mcc-mnc-list, status-codes)
// @Success      200 {file} file
// @Failure      404 {object} echo.HTTPError "Unknown dataset or file not written yet"
// @Router       /v1/dataset/{name} [get]
func GetDatasetFileHandler(c echo.Context) error {
	datasetFiles := map[string]string{
		"mcc-mnc-list": commons.RecordsFile(),
		"status-codes": commons.StatusCodesFile(),
	}

	path, ok := datasetFiles[c.Param("name")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown dataset")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to resolve dataset path")
	}

	fileInfo, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound, "Dataset not written yet")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to access dataset")
	}
	if fileInfo.IsDir() {
		return echo.NewHTTPError(http.StatusInternalServerError, "Dataset path is a directory")
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.File(absPath)
}
