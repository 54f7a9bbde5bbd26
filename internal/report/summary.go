/*
Package report renders processed announcements into the run's outputs: the
styled Excel workbook and the optional Google Sheets push.
*/
package report

import (
	"sort"

	"github.com/shanehull/bsetracker/internal/types"
)

// CountItem is one label with its announcement count.
type CountItem struct {
	Label string
	Count int
}

// Summary aggregates counts over one run's announcements.
type Summary struct {
	Total        int
	Categories   []CountItem
	Implications []CountItem
	TopCompanies []CountItem
}

// Summarize computes category counts, implication counts and the top-10
// companies by announcement count, each sorted by count descending.
func Summarize(anns []types.Announcement) Summary {
	categories := make(map[string]int)
	implications := make(map[string]int)
	companies := make(map[string]int)

	for _, a := range anns {
		categories[a.Category]++
		implications[a.Implication]++
		companies[a.Company]++
	}

	topCompanies := sortedCounts(companies)
	if len(topCompanies) > 10 {
		topCompanies = topCompanies[:10]
	}

	return Summary{
		Total:        len(anns),
		Categories:   sortedCounts(categories),
		Implications: sortedCounts(implications),
		TopCompanies: topCompanies,
	}
}

func sortedCounts(m map[string]int) []CountItem {
	items := make([]CountItem, 0, len(m))
	for label, count := range m {
		items = append(items, CountItem{Label: label, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Label < items[j].Label
	})
	return items
}
