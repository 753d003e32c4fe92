// SPDX-License-Identifier: GPL-3.0-only

package wiki

import "testing"

func str(s string) *string { return &s }

func TestClassifySection(t *testing.T) {
	tests := []struct {
		heading string
		want    *RecordType
	}{
		{"National operators", recordType(National)},
		{"Test networks", recordType(Test)},
		{"International operators", recordType(International)},
		{"  National operators  ", recordType(National)},
		{"See also", nil},
		{"External links", nil},
		{"National MNC Authorities", nil},
		{"Random Section", recordType(Other)},
		{"", recordType(Other)},
		{"X", recordType(Other)},
	}

	for _, tt := range tests {
		got := ClassifySection(tt.heading)
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("ClassifySection(%q): expected %v, got %v", tt.heading, tt.want, got)
		}
	}
}

func TestExtractCountry(t *testing.T) {
	c := ExtractCountry("France – FR")
	if deref(c.Name) != "France" || deref(c.Code) != "FR" {
		t.Errorf("Expected France/FR, got %s/%s", deref(c.Name), deref(c.Code))
	}

	c = ExtractCountry("  United States of America – US  ")
	if deref(c.Name) != "United States of America" || deref(c.Code) != "US" {
		t.Errorf("Expected United States of America/US, got %s/%s", deref(c.Name), deref(c.Code))
	}

	c = ExtractCountry("Guernsey (United Kingdom) – GG – 234")
	if deref(c.Name) != "Guernsey (United Kingdom)" || deref(c.Code) != "GG – 234" {
		t.Errorf("Expected split on first dash, got %s/%s", deref(c.Name), deref(c.Code))
	}

	for _, heading := range []string{"No Dash Here", "France - FR", ""} {
		c = ExtractCountry(heading)
		if c.Name != nil || c.Code != nil {
			t.Errorf("ExtractCountry(%q): expected nil fields, got %s/%s", heading, deref(c.Name), deref(c.Code))
		}
	}
}
