package process

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shanehull/bsetracker/internal/types"
)

func TestExtractHighlights(t *testing.T) {
	t.Run("named numeric patterns", func(t *testing.T) {
		text := "Revenue: Rs. 1,234.5 crore and net profit: 210.8 crore for the quarter"
		got := ExtractHighlights(text, types.CategoryFinancialResults)
		assert.Contains(t, got, "REVENUE: 1,234.5")
		assert.Contains(t, got, "PROFIT: 210.8")
	})

	t.Run("dividend and eps", func(t *testing.T) {
		text := "Declared dividend: Rs. 5 per share, EPS: 12.40"
		got := ExtractHighlights(text, types.CategoryDividend)
		assert.Contains(t, got, "DIVIDEND: 5")
		assert.Contains(t, got, "EPS: 12.40")
	})

	t.Run("order value", func(t *testing.T) {
		text := "Received orders worth Rs. 850 crore from state utilities"
		got := ExtractHighlights(text, types.CategoryOrderWin)
		assert.Contains(t, got, "ORDER VALUE: 850")
	})

	t.Run("generic percent changes", func(t *testing.T) {
		text := "ebitda increased by 18.5% while expenses dropped by 4%"
		got := ExtractHighlights(text, types.CategoryFinancialResults)
		assert.Contains(t, got, "Ebitda change: 18.5%")
		assert.Contains(t, got, "Expenses change: 4%")
	})

	t.Run("at most two matches per pattern", func(t *testing.T) {
		text := "revenue: 100 crore, revenue: 200 crore, revenue: 300 crore"
		got := ExtractHighlights(text, types.CategoryFinancialResults)
		assert.Contains(t, got, "REVENUE: 100")
		assert.Contains(t, got, "REVENUE: 200")
		assert.NotContains(t, got, "REVENUE: 300")
	})

	t.Run("sentence fallback when no numeric patterns", func(t *testing.T) {
		text := "The company has entered into a strategic partnership with a leading global technology firm. Further details will be shared in due course."
		got := ExtractHighlights(text, types.CategoryOthers)
		assert.Contains(t, got, "strategic partnership")
	})

	t.Run("sentinel when nothing extractable", func(t *testing.T) {
		got := ExtractHighlights("Intimation.", types.CategoryOthers)
		assert.Equal(t, "See PDF for details", got)
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "Revenue: 500 crore. profit grew 12%. Margin: 15% maintained."
		first := ExtractHighlights(text, types.CategoryFinancialResults)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, ExtractHighlights(text, types.CategoryFinancialResults))
		}
	})
}
