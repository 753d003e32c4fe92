// SPDX-License-Identifier: GPL-3.0-only

package storage

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mccmnc-server/commons"
	"mccmnc-server/wiki"

	"golang.org/x/crypto/blake2b"
)

// Digest holds the BLAKE2b-256 sums of the two written payloads.
type Digest struct {
	Records     string `json:"records"`
	StatusCodes string `json:"status_codes"`
}

// Encode renders v as 2-space indented JSON without HTML escaping.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteDataset writes the record list and the status list to their
// destinations. Both payloads are encoded and staged in temporary files
// first; neither destination is touched unless both were staged. If the
// status list cannot be put in place, the previous record list is restored.
func WriteDataset(recordsPath, statusesPath string, records []wiki.Record, statuses []string) (Digest, error) {
	if records == nil {
		records = []wiki.Record{}
	}
	if statuses == nil {
		statuses = []string{}
	}

	recordsJSON, err := Encode(records)
	if err != nil {
		return Digest{}, fmt.Errorf("encode records: %w", err)
	}
	statusesJSON, err := Encode(statuses)
	if err != nil {
		return Digest{}, fmt.Errorf("encode status codes: %w", err)
	}

	recordsTmp, err := stage(recordsPath, recordsJSON)
	if err != nil {
		return Digest{}, err
	}
	statusesTmp, err := stage(statusesPath, statusesJSON)
	if err != nil {
		os.Remove(recordsTmp)
		return Digest{}, err
	}

	backup, err := backupExisting(recordsPath)
	if err != nil {
		os.Remove(recordsTmp)
		os.Remove(statusesTmp)
		return Digest{}, err
	}

	if err := os.Rename(recordsTmp, recordsPath); err != nil {
		os.Remove(recordsTmp)
		os.Remove(statusesTmp)
		restore(recordsPath, backup)
		return Digest{}, fmt.Errorf("replace %s: %w", recordsPath, err)
	}

	if err := os.Rename(statusesTmp, statusesPath); err != nil {
		os.Remove(statusesTmp)
		restore(recordsPath, backup)
		return Digest{}, fmt.Errorf("replace %s: %w", statusesPath, err)
	}
	if backup != "" {
		os.Remove(backup)
	}

	commons.Logger.Infof("MCC-MNC list saved to %s", recordsPath)
	commons.Logger.Infof("Total %d records", len(records))
	commons.Logger.Infof("Status codes saved to %s", statusesPath)

	return Digest{Records: sum(recordsJSON), StatusCodes: sum(statusesJSON)}, nil
}

func stage(path string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("stage %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("stage %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("stage %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("stage %s: %w", path, err)
	}
	return tmp.Name(), nil
}

// backupExisting moves the current file at path aside and returns where it
// went, or "" when there is nothing to keep.
func backupExisting(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.bak")
	if err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	tmp.Close()
	if err := os.Rename(path, tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	return tmp.Name(), nil
}

// restore puts the backup taken by backupExisting back in place.
func restore(path, backup string) {
	if backup == "" {
		os.Remove(path)
		return
	}
	if err := os.Rename(backup, path); err != nil {
		commons.Logger.Errorf("Failed to restore %s from %s: %v", path, backup, err)
	}
}

func sum(data []byte) string {
	s := blake2b.Sum256(data)
	return hex.EncodeToString(s[:])
}
