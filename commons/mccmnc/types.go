// SPDX-License-Identifier: GPL-3.0-only

package mccmnc

// Entry is one row of mcc-mnc-list.json.
type Entry struct {
	Type        *string `json:"type"`
	CountryName *string `json:"countryName"`
	CountryCode *string `json:"countryCode"`
	MCC         *string `json:"mcc"`
	MNC         *string `json:"mnc"`
	Brand       *string `json:"brand"`
	Operator    *string `json:"operator"`
	Status      *string `json:"status"`
	Bands       *string `json:"bands"`
	Notes       *string `json:"notes"`
}

type LookupIndex struct {
	Entries       []Entry
	ByMCC         map[string][]Entry
	ByMCCMNC      map[string][]Entry
	ByCountryCode map[string][]Entry
	ByCountry     map[string][]Entry
}
