// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"os"

	"mccmnc-server/commons/mccmnc"
)

var MCCMNCIndex *mccmnc.LookupIndex

var StatusCodes []string

func RecordsFile() string {
	return GetEnv("MCC_MNC_OUTPUT_FILE", "mcc-mnc-list.json")
}

func StatusCodesFile() string {
	return GetEnv("STATUS_CODES_OUTPUT_FILE", "status-codes.json")
}

// InitMCCMNC loads the generated dataset, applying the optional overwrite file.
func InitMCCMNC() error {
	entries, err := mccmnc.LoadJSON(RecordsFile())
	if err != nil {
		return fmt.Errorf("failed to load MCC/MNC data: %w", err)
	}

	overwritePath := GetEnv("MCC_MNC_OVERWRITE_FILE", "mcc-mnc-overwrite.json")
	if _, err := os.Stat(overwritePath); err == nil {
		overwriteEntries, err := mccmnc.LoadJSON(overwritePath)
		if err != nil {
			Logger.Warnf("Failed to load MCC/MNC overwrite data: %v", err)
		} else {
			entries = mccmnc.Merge(entries, overwriteEntries)
			Logger.Infof("Loaded %d MCC/MNC overwrite entries", len(overwriteEntries))
		}
	}

	codes, err := mccmnc.LoadStatusCodes(StatusCodesFile())
	if err != nil {
		Logger.Warnf("Failed to load status codes: %v", err)
		codes = []string{}
	}

	SetDataset(entries, codes)
	return nil
}

// SetDataset replaces the served dataset.
func SetDataset(entries []mccmnc.Entry, codes []string) {
	if codes == nil {
		codes = []string{}
	}
	MCCMNCIndex = mccmnc.BuildIndex(entries)
	StatusCodes = codes
	Logger.Infof("Loaded %d total MCC/MNC entries", len(entries))
}
