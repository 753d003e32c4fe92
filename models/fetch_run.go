// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FetchRun records the outcome of one collection run.
type FetchRun struct {
	ID                uint      `gorm:"primaryKey" json:"-"`
	RunID             uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"run_id"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
	Documents         int       `gorm:"not null" json:"documents"`
	Records           int       `gorm:"not null" json:"records"`
	StatusCodes       int       `gorm:"not null" json:"status_codes"`
	SkippedRows       int       `gorm:"not null" json:"skipped_rows"`
	Failures          *string   `gorm:"type:text" json:"failures,omitempty"`
	RecordsDigest     string    `gorm:"size:64" json:"records_digest"`
	StatusCodesDigest string    `gorm:"size:64" json:"status_codes_digest"`
	CreatedAt         time.Time `json:"created_at"`
}

func (run *FetchRun) BeforeCreate(tx *gorm.DB) (err error) {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}
	return
}

func init() {
	AllModels = append(AllModels, &FetchRun{})
}
