// SPDX-License-Identifier: GPL-3.0-only

package wiki

import "testing"

func TestExtractRowsSkipsShortRows(t *testing.T) {
	root := parseContent(t, operatorTable(
		[]string{"310", "001", "Acme"},
		[]string{"310", "002", "Beta", "Beta Mobile", "Operational", "LTE", ""},
		[]string{},
	))

	national := National
	ctx := SectionContext{RecordType: &national}
	statuses := NewStatusSet()

	records, skipped := ExtractRows(root.Find("table"), ctx, false, statuses)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if skipped != 2 {
		t.Errorf("Expected 2 skipped rows, got %d", skipped)
	}
	if deref(records[0].MNC) != "002" {
		t.Errorf("Expected MNC 002, got %s", deref(records[0].MNC))
	}
}

func TestExtractRowsHiddenAnchorInMCCCell(t *testing.T) {
	hidden := `<div style="overflow:hidden;width:0;height:0;margin:-1ex;float:right"><h3><span class="mw-headline" id="United_States_of_America_-_US_-_313">United States of America - US - 313</span></h3></div>313`
	root := parseContent(t, operatorTable(
		[]string{hidden, "100", "FirstNet", "AT&amp;T FirstNet", "Operational", "LTE 700", ""},
	))

	records, _ := ExtractRows(root.Find("table"), SectionContext{}, false, NewStatusSet())
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if got := deref(records[0].MCC); got != "313" {
		t.Errorf("Expected MCC 313, got %q", got)
	}
	if got := deref(records[0].Operator); got != "AT&T FirstNet" {
		t.Errorf("Expected operator 'AT&T FirstNet', got %q", got)
	}
}

func TestExtractRowsNestedAnchorInMCCCell(t *testing.T) {
	root := parseContent(t, operatorTable(
		[]string{`<span><div>hidden 999</div></span>310`, "260", "T-Mobile", "T-Mobile USA", "Operational", "LTE", ""},
	))

	records, _ := ExtractRows(root.Find("table"), SectionContext{}, false, NewStatusSet())
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if got := deref(records[0].MCC); got != "310" {
		t.Errorf("Expected MCC 310, got %q", got)
	}
}

func TestExtractRowsStatusSet(t *testing.T) {
	root := parseContent(t, operatorTable(
		[]string{"208", "01", "Orange", "Orange S.A.", "operational", "", ""},
		[]string{"208", "02", "Orange", "Orange S.A.", "Operational", "", ""},
		[]string{"208", "03", "", "MobiquiThings", "Not opearational", "", ""},
		[]string{"208", "04", "", "Sisteer", "[5]", "", ""},
	))

	statuses := NewStatusSet()
	records, _ := ExtractRows(root.Find("table"), SectionContext{}, false, statuses)
	if len(records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(records))
	}
	if records[3].Status != nil {
		t.Errorf("Expected nil status for reference-only cell, got %q", *records[3].Status)
	}
	if statuses.Len() != 2 {
		t.Errorf("Expected 2 statuses, got %v", statuses.Discovered())
	}
}
