// SPDX-License-Identifier: GPL-3.0-only

package wiki

import "sort"

type RecordType string

const (
	National      RecordType = "National"
	Test          RecordType = "Test"
	International RecordType = "International"
	Other         RecordType = "other"
)

// Record is one MCC/MNC assignment row. Nil fields are written as JSON null.
type Record struct {
	Type        *RecordType `json:"type"`
	CountryName *string     `json:"countryName"`
	CountryCode *string     `json:"countryCode"`
	MCC         *string     `json:"mcc"`
	MNC         *string     `json:"mnc"`
	Brand       *string     `json:"brand"`
	Operator    *string     `json:"operator"`
	Status      *string     `json:"status"`
	Bands       *string     `json:"bands"`
	Notes       *string     `json:"notes"`
}

type Country struct {
	Name *string
	Code *string
}

// SectionContext is the heading state carried from one sibling node to the
// next while a document is walked.
type SectionContext struct {
	RecordType *RecordType
	Country    Country
}

// StatusSet keeps unique status values in discovery order.
type StatusSet struct {
	seen  map[string]struct{}
	order []string
}

func NewStatusSet() *StatusSet {
	return &StatusSet{seen: make(map[string]struct{})}
}

// Add reports whether status was not present before.
func (s *StatusSet) Add(status string) bool {
	if _, ok := s.seen[status]; ok {
		return false
	}
	s.seen[status] = struct{}{}
	s.order = append(s.order, status)
	return true
}

func (s *StatusSet) Len() int {
	return len(s.order)
}

// Discovered returns the statuses in the order they were first seen.
func (s *StatusSet) Discovered() []string {
	return append([]string(nil), s.order...)
}

func (s *StatusSet) Sorted() []string {
	sorted := s.Discovered()
	sort.Strings(sorted)
	return sorted
}

// Accumulator collects the output of every walked document of a run.
type Accumulator struct {
	Records     []Record
	Statuses    *StatusSet
	SkippedRows int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{Statuses: NewStatusSet()}
}

func recordType(t RecordType) *RecordType {
	return &t
}
