package process

import (
	"strings"

	"github.com/shanehull/bsetracker/internal/types"
)

// Keyword lists for the implication heuristic. Each phrase counts once per
// scan regardless of how many times it appears in the text.
var positiveKeywords = []string{
	"profit increase", "profit up", "revenue growth", "dividend", "bonus",
	"acquisition", "expansion", "new order", "contract win", "upgrade",
	"record", "highest ever", "beat estimates", "outperform", "growth",
	"investment", "capex", "expansion plan", "new plant", "capacity addition",
}

var negativeKeywords = []string{
	"profit decline", "profit down", "revenue decline", "loss", "downgrade",
	"resign", "exit", "closure", "default", "penalty", "fraud",
	"miss estimates", "underperform", "weak", "challenging",
}

// categoryBonus biases the tally for categories that are positive on their
// own regardless of phrasing.
var categoryBonus = map[string]int{
	types.CategoryDividend:    2,
	types.CategoryOrderWin:    2,
	types.CategoryExpansion:   2,
	types.CategoryFundRaising: 1,
}

// AssessImplication rates combined text against the keyword lists and returns
// one of the five implication constants. Thresholds apply in order.
func AssessImplication(text string, category string) string {
	textLower := strings.ToLower(text)

	var positive, negative int
	for _, kw := range positiveKeywords {
		if strings.Contains(textLower, kw) {
			positive++
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(textLower, kw) {
			negative++
		}
	}

	positive += categoryBonus[category]

	switch {
	case positive > negative+2:
		return types.ImplicationPositive
	case positive > negative:
		return types.ImplicationModeratePositive
	case negative > positive+2:
		return types.ImplicationCautious
	case negative > positive:
		return types.ImplicationWatch
	default:
		return types.ImplicationNeutral
	}
}
