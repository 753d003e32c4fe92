// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestGetDatasetFileHandler(t *testing.T) {
	dir := t.TempDir()
	statusPath := filepath.Join(dir, "status-codes.json")
	if err := os.WriteFile(statusPath, []byte("[\n  \"Operational\"\n]"), 0o644); err != nil {
		t.Fatalf("Failed to write status codes: %v", err)
	}
	t.Setenv("STATUS_CODES_OUTPUT_FILE", statusPath)
	t.Setenv("MCC_MNC_OUTPUT_FILE", filepath.Join(dir, "missing.json"))

	rec, err := get("/v1/dataset/status-codes", []string{"name"}, []string{"status-codes"}, GetDatasetFileHandler)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "[\n  \"Operational\"\n]" {
		t.Errorf("Unexpected body: %q", rec.Body.String())
	}

	for _, name := range []string{"mcc-mnc-list", "../etc/passwd"} {
		_, err := get("/v1/dataset/"+name, []string{"name"}, []string{name}, GetDatasetFileHandler)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %v", name, err)
		}
	}
}
