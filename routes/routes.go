// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"mccmnc-server/commons"
	"mccmnc-server/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering v1 routes")
	api_v1 := e.Group("/v1")
	api_v1.GET("/operators", handlers.GetOperatorsHandler)
	api_v1.GET("/operators/phone/:number", handlers.GetOperatorsByPhoneHandler)
	api_v1.GET("/status-codes", handlers.GetStatusCodesHandler)
	api_v1.GET("/runs", handlers.GetRunsHandler)
	api_v1.GET("/dataset/:name", handlers.GetDatasetFileHandler)
	commons.Logger.Info("v1 routes registered successfully")
}
