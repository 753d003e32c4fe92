// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mccmnc-server/collector"
	"mccmnc-server/commons"
	"mccmnc-server/db"
	"mccmnc-server/fetcher"
	"mccmnc-server/models"
	"mccmnc-server/rabbitmq"
	"mccmnc-server/storage"
)

var (
	newFetcher = func() fetcher.Fetcher {
		return fetcher.NewHTTPFetcher(fetcher.Config{})
	}
	storeDataset   = storeRun
	publishDataset = publishRun
)

// runFetch collects the dataset, writes both JSON files and, when asked,
// stores it in the database and announces it on RabbitMQ.
func runFetch(ctx context.Context, storeDB, migrate bool) error {
	result, err := collector.New(newFetcher(), nil).Run(ctx)
	if err != nil {
		return err
	}

	for _, f := range result.Failures {
		commons.Logger.Warnf("Document skipped: %s: %v", f.URL, f.Err)
	}
	if result.Documents == 0 {
		return errors.New("no document could be processed")
	}
	commons.Logger.Infof("Run %s collected %d records and %d status codes from %d documents (%d short rows skipped)",
		result.RunID, len(result.Records), len(result.StatusCodes), result.Documents, result.SkippedRows)

	digest, err := storage.WriteDataset(commons.RecordsFile(), commons.StatusCodesFile(), result.Records, result.StatusCodes)
	if err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	if storeDB {
		if err := storeDataset(result, digest, migrate); err != nil {
			return err
		}
	}

	publishDataset(ctx, result, digest)
	return nil
}

func storeRun(result *collector.Result, digest storage.Digest, migrate bool) error {
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if migrate {
		if err := db.MigrateDB(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	run := &models.FetchRun{
		RunID:             result.RunID,
		StartedAt:         result.StartedAt,
		FinishedAt:        result.FinishedAt,
		Documents:         result.Documents,
		Records:           len(result.Records),
		StatusCodes:       len(result.StatusCodes),
		SkippedRows:       result.SkippedRows,
		Failures:          describeFailures(result.Failures),
		RecordsDigest:     digest.Records,
		StatusCodesDigest: digest.StatusCodes,
	}
	return db.SaveDataset(run, result.Records, result.StatusCodes)
}

func publishRun(ctx context.Context, result *collector.Result, digest storage.Digest) {
	publisher, err := rabbitmq.NewPublisher(rabbitmq.ConfigFromEnv())
	if errors.Is(err, rabbitmq.ErrNotConfigured) {
		commons.Logger.Debug("RabbitMQ not configured, skipping dataset notification")
		return
	}
	if err != nil {
		commons.Logger.Errorf("Failed to initialize RabbitMQ publisher: %v", err)
		return
	}
	defer publisher.Close()

	failed := make([]string, 0, len(result.Failures))
	for _, f := range result.Failures {
		failed = append(failed, f.URL)
	}
	err = publisher.PublishDatasetUpdated(ctx, rabbitmq.DatasetUpdatedEvent{
		RunID:             result.RunID.String(),
		FinishedAt:        result.FinishedAt,
		Records:           len(result.Records),
		StatusCodes:       len(result.StatusCodes),
		FailedDocuments:   failed,
		RecordsDigest:     digest.Records,
		StatusCodesDigest: digest.StatusCodes,
	})
	if err != nil {
		commons.Logger.Warnf("Dataset notification for run %s not sent: %v", result.RunID, err)
	}
}

func describeFailures(failures []collector.DocumentFailure) *string {
	if len(failures) == 0 {
		return nil
	}
	lines := make([]string, len(failures))
	for i, f := range failures {
		lines[i] = f.URL + ": " + f.Err.Error()
	}
	s := strings.Join(lines, "\n")
	return &s
}
