// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"testing"

	"mccmnc-server/wiki"

	"github.com/google/uuid"
)

func TestNewOperatorRecordRoundTrip(t *testing.T) {
	mcc, mnc, status := "310", "001", "Operational"
	test := wiki.Test
	runID := uuid.New()

	op := NewOperator(runID, 7, wiki.Record{Type: &test, MCC: &mcc, MNC: &mnc, Status: &status})
	if op.RunID != runID || op.Position != 7 {
		t.Errorf("Expected run %s position 7, got %s %d", runID, op.RunID, op.Position)
	}
	if op.Type == nil || *op.Type != "Test" {
		t.Errorf("Expected type 'Test', got %v", op.Type)
	}

	r := op.Record()
	if r.Type == nil || *r.Type != wiki.Test {
		t.Errorf("Expected record type Test, got %v", r.Type)
	}
	if *r.MCC != "310" || *r.MNC != "001" || *r.Status != "Operational" {
		t.Errorf("Unexpected record: %+v", r)
	}
	if r.CountryName != nil || r.Notes != nil {
		t.Error("Expected nil fields to stay nil")
	}
}

func TestNewOperatorNilType(t *testing.T) {
	op := NewOperator(uuid.New(), 0, wiki.Record{})
	if op.Type != nil {
		t.Errorf("Expected nil type, got %q", *op.Type)
	}
	if op.Record().Type != nil {
		t.Error("Expected nil record type")
	}
}
