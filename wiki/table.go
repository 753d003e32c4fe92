// SPDX-License-Identifier: GPL-3.0-only

package wiki

import (
	"github.com/PuerkitoBio/goquery"
)

// MinRowCells is the number of cells a row needs to describe an operator.
const MinRowCells = 7

// ExtractRows turns the data rows of an operator table into records and
// records every new status in statuses. It returns the records and the
// number of rows skipped for having fewer than MinRowCells cells.
//
// With globalsOnly set, tables under the national operators section are
// ignored; those rows come from the regional documents.
func ExtractRows(table *goquery.Selection, ctx SectionContext, globalsOnly bool, statuses *StatusSet) ([]Record, int) {
	if globalsOnly && ctx.RecordType != nil && *ctx.RecordType == National {
		return nil, 0
	}

	var records []Record
	skipped := 0
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}

		cells := row.Find("td")
		if cells.Length() < MinRowCells {
			skipped++
			return
		}

		// The MCC cell may hold a zero-size anchor block, e.g.
		// <div style="overflow:hidden;width:0;height:0"><h3>United States - US - 313</h3></div>313
		mccCell := cells.Eq(0)
		mccCell.Find("div").First().Remove()

		status := CanonicalStatus(Normalize(cells.Eq(4).Text()))
		if status != nil {
			statuses.Add(*status)
		}

		records = append(records, Record{
			Type:        ctx.RecordType,
			CountryName: ctx.Country.Name,
			CountryCode: ctx.Country.Code,
			MCC:         Normalize(mccCell.Text()),
			MNC:         Normalize(cells.Eq(1).Text()),
			Brand:       Normalize(cells.Eq(2).Text()),
			Operator:    Normalize(cells.Eq(3).Text()),
			Status:      status,
			Bands:       Normalize(cells.Eq(5).Text()),
			Notes:       Normalize(cells.Eq(6).Text()),
		})
	})

	return records, skipped
}
