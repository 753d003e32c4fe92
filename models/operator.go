// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"mccmnc-server/wiki"

	"github.com/google/uuid"
)

// Operator is a stored MCC/MNC record. Position keeps the extraction order.
type Operator struct {
	ID          uint      `gorm:"primaryKey"`
	RunID       uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Position    int       `gorm:"not null"`
	Type        *string   `gorm:"size:32"`
	CountryName *string   `gorm:"size:255"`
	CountryCode *string   `gorm:"size:32;index"`
	MCC         *string   `gorm:"column:mcc;size:16;index:idx_mcc_mnc"`
	MNC         *string   `gorm:"column:mnc;size:16;index:idx_mcc_mnc"`
	Brand       *string   `gorm:"size:255"`
	Operator    *string   `gorm:"type:text"`
	Status      *string   `gorm:"size:64"`
	Bands       *string   `gorm:"type:text"`
	Notes       *string   `gorm:"type:text"`
	CreatedAt   time.Time
}

func NewOperator(runID uuid.UUID, position int, r wiki.Record) Operator {
	var recordType *string
	if r.Type != nil {
		t := string(*r.Type)
		recordType = &t
	}
	return Operator{
		RunID:       runID,
		Position:    position,
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

func (o Operator) Record() wiki.Record {
	var recordType *wiki.RecordType
	if o.Type != nil {
		t := wiki.RecordType(*o.Type)
		recordType = &t
	}
	return wiki.Record{
		Type:        recordType,
		CountryName: o.CountryName,
		CountryCode: o.CountryCode,
		MCC:         o.MCC,
		MNC:         o.MNC,
		Brand:       o.Brand,
		Operator:    o.Operator,
		Status:      o.Status,
		Bands:       o.Bands,
		Notes:       o.Notes,
	}
}

func init() {
	AllModels = append(AllModels, &Operator{})
}
