// SPDX-License-Identifier: GPL-3.0-only

package collector

import (
	"context"
	"fmt"
	"time"

	"mccmnc-server/commons"
	"mccmnc-server/fetcher"
	"mccmnc-server/wiki"

	"github.com/google/uuid"
)

const GlobalURL = "https://en.wikipedia.org/wiki/Mobile_country_code"

var RegionURLs = []string{
	"https://en.wikipedia.org/wiki/Mobile_Network_Codes_in_ITU_region_2xx_(Europe)",
	"https://en.wikipedia.org/wiki/Mobile_Network_Codes_in_ITU_region_3xx_(North_America)",
	"https://en.wikipedia.org/wiki/Mobile_Network_Codes_in_ITU_region_4xx_(Asia)",
	"https://en.wikipedia.org/wiki/Mobile_Network_Codes_in_ITU_region_5xx_(Oceania)",
	"https://en.wikipedia.org/wiki/Mobile_Network_Codes_in_ITU_region_6xx_(Africa)",
	"https://en.wikipedia.org/wiki/Mobile_Network_Codes_in_ITU_region_7xx_(South_America)",
}

// Document is one page of a run. GlobalsOnly skips national operator
// tables, which the overview page repeats from the regional pages.
type Document struct {
	URL         string
	GlobalsOnly bool
}

// DefaultDocuments lists the regional pages followed by the overview page.
func DefaultDocuments() []Document {
	docs := make([]Document, 0, len(RegionURLs)+1)
	for _, url := range RegionURLs {
		docs = append(docs, Document{URL: url})
	}
	return append(docs, Document{URL: GlobalURL, GlobalsOnly: true})
}

type DocumentFailure struct {
	URL string
	Err error
}

type Result struct {
	RunID       uuid.UUID
	StartedAt   time.Time
	FinishedAt  time.Time
	Documents   int
	Records     []wiki.Record
	StatusCodes []string
	SkippedRows int
	Failures    []DocumentFailure
}

type Collector struct {
	fetcher   fetcher.Fetcher
	documents []Document
}

func New(f fetcher.Fetcher, documents []Document) *Collector {
	if documents == nil {
		documents = DefaultDocuments()
	}
	return &Collector{fetcher: f, documents: documents}
}

// Run fetches and walks every document in order, one at a time. A document
// that fails is reported in Result.Failures and the run continues with the
// next one. Only context cancellation stops the run early.
func (c *Collector) Run(ctx context.Context) (*Result, error) {
	result := &Result{RunID: uuid.New(), StartedAt: time.Now()}
	acc := wiki.NewAccumulator()

	for _, doc := range c.documents {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run %s cancelled: %w", result.RunID, err)
		}

		if err := c.process(ctx, doc, acc); err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("run %s cancelled: %w", result.RunID, ctx.Err())
			}
			commons.Logger.Errorf("Failed to process %s: %v", doc.URL, err)
			result.Failures = append(result.Failures, DocumentFailure{URL: doc.URL, Err: err})
			continue
		}
		result.Documents++
		commons.Logger.Infof("%s %d %d", doc.URL, len(acc.Records), acc.Statuses.Len())
	}

	result.Records = acc.Records
	result.StatusCodes = acc.Statuses.Sorted()
	result.SkippedRows = acc.SkippedRows
	result.FinishedAt = time.Now()
	return result, nil
}

func (c *Collector) process(ctx context.Context, doc Document, acc *wiki.Accumulator) error {
	content, err := c.fetcher.Fetch(ctx, doc.URL)
	if err != nil {
		return err
	}
	if err := wiki.WalkDocument(content, acc, doc.GlobalsOnly); err != nil {
		return fmt.Errorf("walk %s: %w", doc.URL, err)
	}
	return nil
}
