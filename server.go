// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"mccmnc-server/commons"
	"mccmnc-server/db"
	"mccmnc-server/routes"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()

	args := os.Args[1:]
	if slices.Contains(args, "--debug") {
		commons.Logger.SetLevel(log.DEBUG)
	}

	if slices.Contains(args, "--fetch") {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := runFetch(ctx, slices.Contains(args, "--store-db"), slices.Contains(args, "--migrate-db")); err != nil {
			commons.Logger.Fatal("Fetch failed: ", err)
		}
		return
	}

	serve(args)
}

func serve(args []string) {
	e := echo.New()
	e.HideBanner = true

	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
			)
			return nil
		},
	}))
	if slices.Contains(args, "--debug") {
		e.Logger.Warn("Debug mode is enabled.")
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())

	if err := db.InitDB(); err != nil {
		commons.Logger.Fatal("Database initialization failed: ", err)
	}
	if slices.Contains(args, "--migrate-db") {
		commons.Logger.Debug("--migrate-db flag detected, running migrations")
		if err := db.MigrateDB(); err != nil {
			os.Exit(1)
		}
	}

	loadDataset()

	routes.RegisterRoutes(e)

	port := commons.GetEnv("PORT")
	if port == "" {
		port = ":8080"
	}
	if port[0] != ':' {
		port = ":" + port
	}
	e.Logger.Fatal(e.Start(port))
}

// loadDataset serves the generated JSON files, or the last dataset stored in
// the database when the files are missing or unreadable.
func loadDataset() {
	fileErr := commons.InitMCCMNC()
	if fileErr == nil {
		return
	}

	entries, codes, err := db.LoadDataset()
	if err != nil || len(entries) == 0 {
		commons.Logger.Warnf("%v; lookups are unavailable until a dataset is written", fileErr)
		return
	}
	commons.Logger.Infof("%v; serving the dataset stored in the database", fileErr)
	commons.SetDataset(entries, codes)
}
