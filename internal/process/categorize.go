/*
Package process implements the announcement pipeline: normalization and
in-run deduplication of raw records, keyword categorization, highlight
extraction and implication scoring.
*/
package process

import (
	"strings"

	"github.com/shanehull/bsetracker/internal/types"
)

// categoryRule pairs a set of trigger keywords with a category label.
type categoryRule struct {
	keywords []string
	label    string
}

// categoryRules is evaluated in order and the first matching rule wins, so
// rule order is part of the contract. A subject mentioning both a board
// meeting and a dividend is a Board Meeting.
var categoryRules = []categoryRule{
	{[]string{"board meeting", "meeting of board"}, types.CategoryBoardMeeting},
	{[]string{"financial result", "quarterly result", "annual result", "q1", "q2", "q3", "q4"}, types.CategoryFinancialResults},
	{[]string{"dividend", "interim dividend", "final dividend"}, types.CategoryDividend},
	{[]string{"agm", "egm", "annual general", "extraordinary general"}, types.CategoryAGMEGM},
	{[]string{"acquisition", "acquire", "takeover"}, types.CategoryAcquisition},
	{[]string{"investor presentation", "analyst meet", "investor meet"}, types.CategoryInvestorPresentation},
	{[]string{"fund raising", "qip", "preferential", "rights issue", "fpo", "ipo"}, types.CategoryFundRaising},
	{[]string{"merger", "demerger", "amalgamation", "scheme of arrangement"}, types.CategoryMergerDemerger},
	{[]string{"director", "appointment", "resignation", "cessation"}, types.CategoryChangeInDirectors},
	{[]string{"bonus", "split", "buyback", "corporate action"}, types.CategoryCorporateAction},
	{[]string{"concall", "conference call", "earnings call", "transcript"}, types.CategoryConcallTranscript},
	{[]string{"order", "contract", "award", "mandate"}, types.CategoryOrderWin},
	{[]string{"expansion", "capacity", "capex", "new plant", "new facility"}, types.CategoryExpansion},
	{[]string{"rating", "credit rating", "upgrade", "downgrade"}, types.CategoryRating},
}

// Categorize maps subject and optional description text to exactly one
// category label by case-insensitive substring match.
func Categorize(subject, description string) string {
	text := strings.ToLower(subject + " " + description)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.label
			}
		}
	}
	return types.CategoryOthers
}
