package process

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shanehull/bsetracker/internal/types"
)

func TestAssessImplication(t *testing.T) {
	t.Run("three positives with no bonus", func(t *testing.T) {
		// "record", "bonus" and "upgrade" each hit once.
		got := AssessImplication("record bonus issue and rating upgrade", types.CategoryOthers)
		assert.Equal(t, types.ImplicationPositive, got)
	})

	t.Run("category bonus crosses the threshold", func(t *testing.T) {
		// One positive hit ("new order"); Order Win adds +2 for a total of 3.
		text := "received new order from a state utility"
		assert.Equal(t, types.ImplicationPositive, AssessImplication(text, types.CategoryOrderWin))
		assert.Equal(t, types.ImplicationModeratePositive, AssessImplication(text, types.CategoryOthers))
	})

	t.Run("fund raising bonus is smaller", func(t *testing.T) {
		// No keyword hits; +1 alone only clears the moderate threshold.
		got := AssessImplication("allotment of equity shares", types.CategoryFundRaising)
		assert.Equal(t, types.ImplicationModeratePositive, got)
	})

	t.Run("cautious on heavy negatives", func(t *testing.T) {
		got := AssessImplication("penalty imposed for default, fraud alleged", types.CategoryOthers)
		assert.Equal(t, types.ImplicationCautious, got)
	})

	t.Run("watch on slight negatives", func(t *testing.T) {
		got := AssessImplication("outlook remains weak", types.CategoryOthers)
		assert.Equal(t, types.ImplicationWatch, got)
	})

	t.Run("neutral when balanced", func(t *testing.T) {
		got := AssessImplication("routine compliance filing", types.CategoryOthers)
		assert.Equal(t, types.ImplicationNeutral, got)
	})

	t.Run("keyword counted once per scan", func(t *testing.T) {
		// "dividend" appears three times but tallies one positive hit.
		got := AssessImplication("dividend dividend dividend", types.CategoryOthers)
		assert.Equal(t, types.ImplicationModeratePositive, got)
	})

	t.Run("star markers are verbatim", func(t *testing.T) {
		assert.Contains(t, types.ImplicationPositive, "★★★")
		assert.Contains(t, types.ImplicationCautious, "CAUTIOUS")
		assert.Contains(t, types.ImplicationWatch, "★★")
	})
}
