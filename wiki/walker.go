// SPDX-License-Identifier: GPL-3.0-only

package wiki

import (
	"strings"

	"mccmnc-server/commons"

	"github.com/PuerkitoBio/goquery"
)

type nodeKind int

const (
	otherNode nodeKind = iota
	sectionHeading
	countryHeading
	dataTable
)

func classifyNode(node *goquery.Selection) nodeKind {
	switch goquery.NodeName(node) {
	case "div":
		if !node.HasClass("mw-heading") {
			return otherNode
		}
		switch {
		case node.HasClass("mw-heading2"):
			return sectionHeading
		case node.HasClass("mw-heading4"):
			return countryHeading
		}
	case "h2":
		return sectionHeading
	case "h4":
		return countryHeading
	case "table":
		return dataTable
	}
	return otherNode
}

// WalkDocument extracts every operator record of a parsed content container
// into acc. Citation links are stripped from root before the walk.
//
// Headings are tracked across siblings: a level-2 heading sets the record
// type until the next level-2 heading, a level-4 heading sets the country
// until the next level-4 heading. Entering a new section keeps the country.
func WalkDocument(root *goquery.Selection, acc *Accumulator, globalsOnly bool) error {
	root, err := StripReferences(root)
	if err != nil {
		return err
	}

	children := root.Contents()
	if children.Length() == 0 {
		return ErrEmptyContent
	}

	var ctx SectionContext
	children.Each(func(_ int, node *goquery.Selection) {
		if strings.TrimSpace(node.Text()) == "" {
			return
		}

		switch classifyNode(node) {
		case sectionHeading:
			ctx.RecordType = sectionRecordType(node)
		case countryHeading:
			ctx.Country = sectionCountry(node)
		case dataTable:
			records, skipped := ExtractRows(node, ctx, globalsOnly, acc.Statuses)
			if skipped > 0 {
				commons.Logger.Debugf("Skipped %d short rows in table under %s", skipped, describe(ctx))
			}
			acc.Records = append(acc.Records, records...)
			acc.SkippedRows += skipped
		case otherNode:
		}
	})

	return nil
}

func describe(ctx SectionContext) string {
	section := "<none>"
	if ctx.RecordType != nil {
		section = string(*ctx.RecordType)
	}
	if ctx.Country.Name != nil {
		return section + "/" + *ctx.Country.Name
	}
	return section
}
