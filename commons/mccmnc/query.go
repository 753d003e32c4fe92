// SPDX-License-Identifier: GPL-3.0-only

package mccmnc

import (
	"encoding/json"
	"os"
	"strings"
)

func LoadJSON(filePath string) ([]Entry, error) {
	var entries []Entry

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func LoadStatusCodes(filePath string) ([]string, error) {
	var codes []string

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, err
	}

	return codes, nil
}

// Key identifies an entry by its MCC and MNC, e.g. "310-001".
func (e Entry) Key() string {
	return MCCMNCKey(value(e.MCC), value(e.MNC))
}

func MCCMNCKey(mcc, mnc string) string {
	return strings.TrimSpace(mcc) + "-" + strings.TrimSpace(mnc)
}

// Merge applies overwrite entries on top of base. An overwrite replaces every
// base entry with the same MCC-MNC key; overwrites without a match are appended.
func Merge(base, overwrite []Entry) []Entry {
	byKey := make(map[string]Entry, len(overwrite))
	var order []string
	for _, e := range overwrite {
		if _, ok := byKey[e.Key()]; !ok {
			order = append(order, e.Key())
		}
		byKey[e.Key()] = e
	}

	used := make(map[string]bool)
	merged := make([]Entry, 0, len(base)+len(overwrite))
	for _, e := range base {
		if o, ok := byKey[e.Key()]; ok {
			if !used[e.Key()] {
				merged = append(merged, o)
				used[e.Key()] = true
			}
			continue
		}
		merged = append(merged, e)
	}
	for _, key := range order {
		if !used[key] {
			merged = append(merged, byKey[key])
		}
	}
	return merged
}

func BuildIndex(entries []Entry) *LookupIndex {
	idx := &LookupIndex{
		Entries:       entries,
		ByMCC:         make(map[string][]Entry),
		ByMCCMNC:      make(map[string][]Entry),
		ByCountryCode: make(map[string][]Entry),
		ByCountry:     make(map[string][]Entry),
	}

	for _, e := range entries {
		if e.MCC != nil {
			idx.ByMCC[*e.MCC] = append(idx.ByMCC[*e.MCC], e)
			idx.ByMCCMNC[e.Key()] = append(idx.ByMCCMNC[e.Key()], e)
		}
		if e.CountryCode != nil {
			code := strings.ToUpper(*e.CountryCode)
			idx.ByCountryCode[code] = append(idx.ByCountryCode[code], e)
		}
		if e.CountryName != nil {
			name := strings.ToLower(*e.CountryName)
			idx.ByCountry[name] = append(idx.ByCountry[name], e)
		}
	}

	return idx
}

func (idx *LookupIndex) LookupByMCC(mcc string) []Entry {
	return idx.ByMCC[strings.TrimSpace(mcc)]
}

func (idx *LookupIndex) LookupByMCCMNC(mcc, mnc string) []Entry {
	return idx.ByMCCMNC[MCCMNCKey(mcc, mnc)]
}

// LookupByCountryCode matches the code of the country heading case-insensitively.
func (idx *LookupIndex) LookupByCountryCode(code string) []Entry {
	return idx.ByCountryCode[strings.ToUpper(strings.TrimSpace(code))]
}

func (idx *LookupIndex) LookupByCountry(name string) []Entry {
	return idx.ByCountry[strings.ToLower(strings.TrimSpace(name))]
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
