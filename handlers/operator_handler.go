// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"strings"

	"mccmnc-server/commons"
	"mccmnc-server/commons/mccmnc"

	"github.com/labstack/echo/v4"
	"github.com/nyaruka/phonenumbers"
)

var errDatasetNotLoaded = &echo.HTTPError{
	Code:    http.StatusServiceUnavailable,
	Message: "MCC/MNC dataset is not loaded, run with --fetch first",
}

// GetOperatorsHandler godoc
// @Summary      Look up operators
// @Description  Returns the operators matching an MCC, an MCC and MNC pair, or a country.
// @Tags         operators
// @Produce      json
// @Param        mcc      query  string  false  "Mobile country code"  example(208)
// @Param        mnc      query  string  false  "Mobile network code, requires mcc"  example(01)
// @Param        country  query  string  false  "Country code or country name"  example(FR)
// @Success      200 {object} OperatorsResponse
// @Failure      400 {object} echo.HTTPError "Missing or inconsistent query parameters"
// @Failure      503 {object} echo.HTTPError "Dataset not loaded"
// @Router       /v1/operators [get]
func GetOperatorsHandler(c echo.Context) error {
	logger := c.Logger()

	idx := commons.MCCMNCIndex
	if idx == nil {
		logger.Error("MCC/MNC index requested before the dataset was loaded.")
		return errDatasetNotLoaded
	}

	mcc := strings.TrimSpace(c.QueryParam("mcc"))
	mnc := strings.TrimSpace(c.QueryParam("mnc"))
	country := strings.TrimSpace(c.QueryParam("country"))

	var entries []mccmnc.Entry
	switch {
	case mnc != "" && mcc == "":
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "mnc query parameter requires mcc",
		}
	case mcc != "" && mnc != "":
		entries = idx.LookupByMCCMNC(mcc, mnc)
	case mcc != "":
		entries = idx.LookupByMCC(mcc)
	case country != "":
		entries = lookupCountry(idx, country)
	default:
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "at least one of mcc or country query parameters is required",
		}
	}

	if mcc != "" && country != "" {
		entries = filterCountry(entries, country)
	}

	logger.Debugf("Operator lookup mcc=%q mnc=%q country=%q matched %d entries", mcc, mnc, country, len(entries))
	return c.JSON(http.StatusOK, OperatorsResponse{
		Count:     len(entries),
		Operators: nonNil(entries),
	})
}

// GetOperatorsByPhoneHandler godoc
// @Summary      Look up operators for a phone number
// @Description  Resolves the region of an E.164 phone number and returns the operators registered for it.
// @Tags         operators
// @Produce      json
// @Param        number  path  string  true  "E.164 phone number"  example(+33612345678)
// @Success      200 {object} PhoneLookupResponse
// @Failure      400 {object} echo.HTTPError "Invalid phone number"
// @Failure      404 {object} echo.HTTPError "No operators for the region"
// @Failure      503 {object} echo.HTTPError "Dataset not loaded"
// @Router       /v1/operators/phone/{number} [get]
func GetOperatorsByPhoneHandler(c echo.Context) error {
	logger := c.Logger()

	idx := commons.MCCMNCIndex
	if idx == nil {
		logger.Error("MCC/MNC index requested before the dataset was loaded.")
		return errDatasetNotLoaded
	}

	number := strings.TrimSpace(c.Param("number"))
	parsedNumber, err := phonenumbers.Parse(number, "")
	if err != nil || !phonenumbers.IsValidNumber(parsedNumber) {
		logger.Errorf("Invalid phone number '%s': %v", number, err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "number must be a valid E.164 phone number. Please ensure it starts with a '+' followed by the country code and national number.",
		}
	}

	region := phonenumbers.GetRegionCodeForNumber(parsedNumber)
	entries := idx.LookupByCountryCode(region)
	if len(entries) == 0 {
		logger.Errorf("No operators found for region %s", region)
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "No operators found for the phone number region",
		}
	}

	return c.JSON(http.StatusOK, PhoneLookupResponse{
		PhoneNumber: number,
		Region:      region,
		CallingCode: parsedNumber.GetCountryCode(),
		Count:       len(entries),
		Operators:   entries,
	})
}

func lookupCountry(idx *mccmnc.LookupIndex, country string) []mccmnc.Entry {
	if entries := idx.LookupByCountryCode(country); len(entries) > 0 {
		return entries
	}
	return idx.LookupByCountry(country)
}

func filterCountry(entries []mccmnc.Entry, country string) []mccmnc.Entry {
	var filtered []mccmnc.Entry
	for _, e := range entries {
		if (e.CountryCode != nil && strings.EqualFold(*e.CountryCode, country)) ||
			(e.CountryName != nil && strings.EqualFold(*e.CountryName, country)) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func nonNil(entries []mccmnc.Entry) []mccmnc.Entry {
	if entries == nil {
		return []mccmnc.Entry{}
	}
	return entries
}
