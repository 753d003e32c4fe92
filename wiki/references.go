// SPDX-License-Identifier: GPL-3.0-only

package wiki

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const citeNotePrefix = "#cite_note"

// StripReferences removes citation-note links from root and returns root.
// The tree is modified in place, so it must not be walked concurrently.
// Every link is expected to carry an href; a link without one aborts the
// pass with ErrMissingAttribute before anything is removed.
func StripReferences(root *goquery.Selection) (*goquery.Selection, error) {
	links := root.Find("a")

	var citations []*goquery.Selection
	var err error
	links.EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, ok := link.Attr("href")
		if !ok {
			err = fmt.Errorf("%w: %q", ErrMissingAttribute, strings.TrimSpace(link.Text()))
			return false
		}
		if strings.HasPrefix(href, citeNotePrefix) {
			citations = append(citations, link)
		}
		return true
	})
	if err != nil {
		return root, err
	}

	for _, link := range citations {
		link.Remove()
	}
	return root, nil
}
