// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"mccmnc-server/commons/mccmnc"
	"mccmnc-server/models"
)

// swagger:model OperatorsResponse
type OperatorsResponse struct {
	// Number of matching operators
	Count int `json:"count" example:"2"`
	// Matching operators in extraction order
	Operators []mccmnc.Entry `json:"operators"`
}

// swagger:model PhoneLookupResponse
type PhoneLookupResponse struct {
	// Phone number as given
	PhoneNumber string `json:"phone_number" example:"+33612345678"`
	// ISO 3166-1 alpha-2 region of the number
	Region string `json:"region" example:"FR"`
	// E.164 country calling code
	CallingCode int32 `json:"calling_code" example:"33"`
	// Number of operators registered for the region
	Count int `json:"count" example:"24"`
	// Operators registered for the region
	Operators []mccmnc.Entry `json:"operators"`
}

// swagger:model StatusCodesResponse
type StatusCodesResponse struct {
	// Sorted list of observed operator statuses
	StatusCodes []string `json:"status_codes" example:"Not operational,Operational"`
}

// swagger:model RunsResponse
type RunsResponse struct {
	// Most recent fetch runs, newest first
	Runs []models.FetchRun `json:"runs"`
}
