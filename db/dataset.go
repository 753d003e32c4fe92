// SPDX-License-Identifier: GPL-3.0-only

package db

import (
	"fmt"

	"mccmnc-server/commons"
	"mccmnc-server/commons/mccmnc"
	"mccmnc-server/models"
	"mccmnc-server/wiki"

	"gorm.io/gorm"
)

const insertBatchSize = 500

// SaveDataset replaces the stored operators and status codes with the output
// of run and records the run itself, all in one transaction.
func SaveDataset(run *models.FetchRun, records []wiki.Record, statuses []string) error {
	return Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return fmt.Errorf("failed to create fetch run: %w", err)
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Operator{}).Error; err != nil {
			return fmt.Errorf("failed to clear operators: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.StatusCode{}).Error; err != nil {
			return fmt.Errorf("failed to clear status codes: %w", err)
		}

		if len(records) > 0 {
			operators := make([]models.Operator, len(records))
			for i, r := range records {
				operators[i] = models.NewOperator(run.RunID, i, r)
			}
			if err := tx.CreateInBatches(operators, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to store operators: %w", err)
			}
		}

		if len(statuses) > 0 {
			codes := make([]models.StatusCode, len(statuses))
			for i, s := range statuses {
				codes[i] = models.StatusCode{Name: s}
			}
			if err := tx.Create(&codes).Error; err != nil {
				return fmt.Errorf("failed to store status codes: %w", err)
			}
		}

		commons.Logger.Infof("Stored %d operators and %d status codes for run %s", len(records), len(statuses), run.RunID)
		return nil
	})
}

func LoadOperators() ([]wiki.Record, error) {
	var operators []models.Operator
	if err := Conn.Order("position").Find(&operators).Error; err != nil {
		return nil, fmt.Errorf("failed to load operators: %w", err)
	}
	records := make([]wiki.Record, len(operators))
	for i, o := range operators {
		records[i] = o.Record()
	}
	return records, nil
}

func LoadStatusCodes() ([]string, error) {
	var codes []models.StatusCode
	if err := Conn.Order("name").Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to load status codes: %w", err)
	}
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = c.Name
	}
	return names, nil
}

// LoadDataset returns the last stored dataset in the shape of the generated
// JSON files.
func LoadDataset() ([]mccmnc.Entry, []string, error) {
	records, err := LoadOperators()
	if err != nil {
		return nil, nil, err
	}
	codes, err := LoadStatusCodes()
	if err != nil {
		return nil, nil, err
	}

	entries := make([]mccmnc.Entry, len(records))
	for i, r := range records {
		var recordType *string
		if r.Type != nil {
			t := string(*r.Type)
			recordType = &t
		}
		entries[i] = mccmnc.Entry{
			Type:        recordType,
			CountryName: r.CountryName,
			CountryCode: r.CountryCode,
			MCC:         r.MCC,
			MNC:         r.MNC,
			Brand:       r.Brand,
			Operator:    r.Operator,
			Status:      r.Status,
			Bands:       r.Bands,
			Notes:       r.Notes,
		}
	}
	return entries, codes, nil
}

func RecentRuns(limit int) ([]models.FetchRun, error) {
	var runs []models.FetchRun
	if err := Conn.Order("started_at desc").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to load fetch runs: %w", err)
	}
	return runs, nil
}
