// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mccmnc-server/collector"
	"mccmnc-server/fetcher"
	"mccmnc-server/storage"

	"github.com/PuerkitoBio/goquery"
)

const testPage = `<div class="mw-heading mw-heading2"><h2>National operators</h2></div>` +
	`<div class="mw-heading mw-heading4"><h4>France – FR</h4></div>` +
	`<table><tr><th>MCC</th></tr>` +
	`<tr><td>208</td><td>01</td><td>Orange</td><td>Orange S.A.</td><td>Operational</td><td>GSM 900</td><td></td></tr>` +
	`</table>`

type stubFetcher struct {
	err error
}

func (f stubFetcher) Fetch(_ context.Context, _ string) (*goquery.Selection, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div id="mw-content-text"><div class="mw-parser-output">` + testPage + `</div></div></body></html>`))
	if err != nil {
		return nil, err
	}
	return doc.Find(fetcher.ContentSelector), nil
}

type fetchCalls struct {
	stored    int
	published int
}

func stubFetch(t *testing.T, f fetcher.Fetcher) *fetchCalls {
	t.Helper()
	calls := &fetchCalls{}
	previousFetcher, previousStore, previousPublish := newFetcher, storeDataset, publishDataset
	t.Cleanup(func() {
		newFetcher, storeDataset, publishDataset = previousFetcher, previousStore, previousPublish
	})

	newFetcher = func() fetcher.Fetcher { return f }
	storeDataset = func(*collector.Result, storage.Digest, bool) error {
		calls.stored++
		return nil
	}
	publishDataset = func(context.Context, *collector.Result, storage.Digest) {
		calls.published++
	}
	return calls
}

func setOutputFiles(t *testing.T, dir string) (string, string) {
	t.Helper()
	recordsPath := filepath.Join(dir, "mcc-mnc-list.json")
	statusesPath := filepath.Join(dir, "status-codes.json")
	t.Setenv("MCC_MNC_OUTPUT_FILE", recordsPath)
	t.Setenv("STATUS_CODES_OUTPUT_FILE", statusesPath)
	return recordsPath, statusesPath
}

func TestRunFetch(t *testing.T) {
	calls := stubFetch(t, stubFetcher{})
	recordsPath, statusesPath := setOutputFiles(t, t.TempDir())

	if err := runFetch(context.Background(), true, false); err != nil {
		t.Fatalf("runFetch failed: %v", err)
	}

	data, err := os.ReadFile(recordsPath)
	if err != nil {
		t.Fatalf("Failed to read records: %v", err)
	}
	if !strings.Contains(string(data), `"countryCode": "FR"`) {
		t.Errorf("Expected French operator in records, got:\n%s", data)
	}
	statuses, err := os.ReadFile(statusesPath)
	if err != nil {
		t.Fatalf("Failed to read status codes: %v", err)
	}
	if string(statuses) != "[\n  \"Operational\"\n]" {
		t.Errorf("Unexpected status codes file:\n%s", statuses)
	}
	if calls.stored != 1 || calls.published != 1 {
		t.Errorf("Expected one store and one publish, got %d and %d", calls.stored, calls.published)
	}
}

func TestRunFetchSkipsStoreWithoutFlag(t *testing.T) {
	calls := stubFetch(t, stubFetcher{})
	setOutputFiles(t, t.TempDir())

	if err := runFetch(context.Background(), false, false); err != nil {
		t.Fatalf("runFetch failed: %v", err)
	}
	if calls.stored != 0 || calls.published != 1 {
		t.Errorf("Expected no store and one publish, got %d and %d", calls.stored, calls.published)
	}
}

func TestRunFetchNoDocuments(t *testing.T) {
	calls := stubFetch(t, stubFetcher{err: errors.New("connection refused")})
	dir := t.TempDir()
	setOutputFiles(t, dir)

	err := runFetch(context.Background(), true, false)
	if err == nil {
		t.Fatal("Expected error when every document fails")
	}
	if !strings.Contains(err.Error(), "no document") {
		t.Errorf("Expected no-document error, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected no output files, found %d entries", len(entries))
	}
	if calls.stored != 0 || calls.published != 0 {
		t.Errorf("Expected no store or publish, got %d and %d", calls.stored, calls.published)
	}
}

func TestRunFetchStorageFailureAborts(t *testing.T) {
	calls := stubFetch(t, stubFetcher{})
	setOutputFiles(t, filepath.Join(t.TempDir(), "missing-dir"))

	err := runFetch(context.Background(), true, false)
	if err == nil {
		t.Fatal("Expected error when the output directory does not exist")
	}
	if !strings.Contains(err.Error(), "write dataset") {
		t.Errorf("Expected write dataset error, got %v", err)
	}
	if calls.stored != 0 || calls.published != 0 {
		t.Errorf("Expected no store or publish after storage failure, got %d and %d", calls.stored, calls.published)
	}
}

func TestDescribeFailures(t *testing.T) {
	if got := describeFailures(nil); got != nil {
		t.Errorf("Expected nil for no failures, got %q", *got)
	}

	got := describeFailures([]collector.DocumentFailure{
		{URL: "https://example.org/a", Err: errors.New("timeout")},
		{URL: "https://example.org/b", Err: errors.New("empty content")},
	})
	want := "https://example.org/a: timeout\nhttps://example.org/b: empty content"
	if got == nil || *got != want {
		t.Errorf("Expected %q, got %v", want, got)
	}
}
