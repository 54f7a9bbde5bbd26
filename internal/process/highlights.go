package process

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	highlightSentinel  = "See PDF for details"
	maxHighlights      = 8
	maxMatchesPerRule  = 2
	maxGenericChanges  = 3
	highlightSeparator = " | "
)

// extractionRule is one named numeric pattern searched in fixed order.
type extractionRule struct {
	name    string
	pattern *regexp.Regexp
}

// extractionRules run against lower-cased text; each captures a numeric value
// (digits, commas, decimal point) with optional currency and unit tokens.
var extractionRules = []extractionRule{
	{"REVENUE", regexp.MustCompile(`revenue[:\s]+(?:rs\.?|inr|₹)?\s*([\d,\.]+)\s*(?:crore|cr|lakh|billion|million)?`)},
	{"PROFIT", regexp.MustCompile(`(?:net\s+)?profit[:\s]+(?:rs\.?|inr|₹)?\s*([\d,\.]+)\s*(?:crore|cr|lakh|billion|million)?`)},
	{"GROWTH", regexp.MustCompile(`(?:growth|increase|up|rose)\s+(?:of\s+)?(\d+(?:\.\d+)?)\s*%`)},
	{"DIVIDEND", regexp.MustCompile(`dividend[:\s]+(?:rs\.?|inr|₹)?\s*([\d,\.]+)\s*(?:per\s+share)?`)},
	{"ORDER VALUE", regexp.MustCompile(`order(?:s)?\s+(?:worth|of|valued\s+at)\s+(?:rs\.?|inr|₹)?\s*([\d,\.]+)\s*(?:crore|cr|lakh|billion|million)?`)},
	{"EBITDA", regexp.MustCompile(`ebitda[:\s]+(?:rs\.?|inr|₹)?\s*([\d,\.]+)\s*(?:crore|cr|lakh|billion|million)?`)},
	{"MARGIN", regexp.MustCompile(`margin[:\s]+(?:of\s+)?(\d+(?:\.\d+)?)\s*%`)},
	{"EPS", regexp.MustCompile(`eps[:\s]+(?:rs\.?|inr|₹)?\s*([\d,\.]+)`)},
}

var genericChangePattern = regexp.MustCompile(`(\w+)\s+(?:increased|decreased|grew|fell|rose|dropped)\s+(?:by\s+)?(\d+(?:\.\d+)?)\s*%`)

// ExtractHighlights mines free text for salient financial figures and returns
// a short digest string. Best effort: deterministic and bounded, not complete.
// The category is unused today but kept for future category-aware rules.
func ExtractHighlights(text string, category string) string {
	_ = category

	var highlights []string
	textLower := strings.ToLower(text)

	for _, rule := range extractionRules {
		matches := rule.pattern.FindAllStringSubmatch(textLower, -1)
		for i, m := range matches {
			if i >= maxMatchesPerRule {
				break
			}
			highlights = append(highlights, fmt.Sprintf("%s: %s", rule.name, m[1]))
		}
	}

	changes := genericChangePattern.FindAllStringSubmatch(textLower, -1)
	for i, m := range changes {
		if i >= maxGenericChanges {
			break
		}
		highlights = append(highlights, fmt.Sprintf("%s change: %s%%", titleWord(m[1]), m[2]))
	}

	if len(highlights) == 0 {
		highlights = sentenceFallback(text)
	}

	if len(highlights) == 0 {
		return highlightSentinel
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return strings.Join(highlights, highlightSeparator)
}

// sentenceFallback takes the first few period-split fragments long enough to
// carry meaning, trimmed to 100 chars.
func sentenceFallback(text string) []string {
	var out []string
	fragments := strings.Split(text, ".")
	if len(fragments) > 3 {
		fragments = fragments[:3]
	}
	for _, s := range fragments {
		trimmed := strings.TrimSpace(s)
		if len(trimmed) <= 20 {
			continue
		}
		if len(trimmed) > 100 {
			trimmed = trimmed[:100]
		}
		out = append(out, trimmed)
	}
	return out
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
