// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"strconv"

	"mccmnc-server/commons"
	"mccmnc-server/db"

	"github.com/labstack/echo/v4"
)

const maxRunsLimit = 100

// GetStatusCodesHandler godoc
// @Summary      List status codes
// @Description  Returns the sorted list of operator statuses observed in the dataset.
// @Tags         operators
// @Produce      json
// @Success      200 {object} StatusCodesResponse
// @Failure      503 {object} echo.HTTPError "Dataset not loaded"
// @Router       /v1/status-codes [get]
func GetStatusCodesHandler(c echo.Context) error {
	if commons.MCCMNCIndex == nil {
		c.Logger().Error("Status codes requested before the dataset was loaded.")
		return errDatasetNotLoaded
	}
	codes := commons.StatusCodes
	if codes == nil {
		codes = []string{}
	}
	return c.JSON(http.StatusOK, StatusCodesResponse{StatusCodes: codes})
}

// GetRunsHandler godoc
// @Summary      List fetch runs
// @Description  Returns the most recent dataset collection runs stored in the database.
// @Tags         runs
// @Produce      json
// @Param        limit  query  int  false  "Maximum number of runs (1-100)"  default(10)
// @Success      200 {object} RunsResponse
// @Failure      400 {object} echo.HTTPError "Invalid limit"
// @Failure      503 {object} echo.HTTPError "No database configured"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/runs [get]
func GetRunsHandler(c echo.Context) error {
	logger := c.Logger()

	if db.Conn == nil {
		return &echo.HTTPError{
			Code:    http.StatusServiceUnavailable,
			Message: "No database configured",
		}
	}

	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRunsLimit {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "limit must be an integer between 1 and 100",
			}
		}
		limit = n
	}

	runs, err := db.RecentRuns(limit)
	if err != nil {
		logger.Errorf("Failed to load fetch runs: %v", err)
		return echo.ErrInternalServerError
	}
	return c.JSON(http.StatusOK, RunsResponse{Runs: runs})
}
