// SPDX-License-Identifier: GPL-3.0-only

package wiki

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const countrySeparator = "–"

var sectionTypes = map[string]RecordType{
	"National operators":      National,
	"Test networks":           Test,
	"International operators": International,
}

var excludedSections = map[string]bool{
	"See also":                 true,
	"External links":           true,
	"National MNC Authorities": true,
}

// ClassifySection maps a level-2 heading to the type of the records listed
// under it. Excluded sections map to nil.
func ClassifySection(heading string) *RecordType {
	name := strings.TrimSpace(heading)
	if utf8.RuneCountInString(name) <= 1 {
		return recordType(Other)
	}
	if excludedSections[name] {
		return nil
	}
	if t, ok := sectionTypes[name]; ok {
		return recordType(t)
	}
	return recordType(Other)
}

// ExtractCountry parses a "Name – CODE" heading.
func ExtractCountry(heading string) Country {
	text := strings.TrimSpace(heading)
	name, code, found := strings.Cut(text, countrySeparator)
	if !found {
		return Country{}
	}
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	return Country{Name: &name, Code: &code}
}

// headingText returns the text of the given heading element, either the
// node itself or a direct child of a heading wrapper block.
func headingText(node *goquery.Selection, tag string) (string, bool) {
	if goquery.NodeName(node) == tag {
		return node.Text(), true
	}
	heading := node.ChildrenFiltered(tag).First()
	if heading.Length() == 0 {
		return "", false
	}
	return heading.Text(), true
}

func sectionRecordType(node *goquery.Selection) *RecordType {
	text, ok := headingText(node, "h2")
	if !ok {
		return recordType(Other)
	}
	return ClassifySection(text)
}

func sectionCountry(node *goquery.Selection) Country {
	text, ok := headingText(node, "h4")
	if !ok {
		return Country{}
	}
	return ExtractCountry(text)
}
