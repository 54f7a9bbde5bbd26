package process

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanehull/bsetracker/internal/types"
)

func bseRecord(company, scrip, subject, date, attachment string) types.RawAnnouncement {
	return types.RawAnnouncement{
		"SLONGNAME":      company,
		"SCRIP_CD":       scrip,
		"NEWSSUB":        subject,
		"NEWS_DT":        date,
		"ATTACHMENTNAME": attachment,
	}
}

func TestProcessAnnouncementsFieldShapes(t *testing.T) {
	t.Run("primary shape", func(t *testing.T) {
		raw := []types.RawAnnouncement{
			bseRecord("Acme Industries Ltd", "500001", "Outcome of Board Meeting", "28-Aug-2026 14:30:00", "acme.pdf"),
		}
		got := ProcessAnnouncements(raw, nil)
		require.Len(t, got, 1)

		a := got[0]
		assert.Equal(t, "Acme Industries Ltd", a.Company)
		assert.Equal(t, "500001", a.ScripCode)
		assert.Equal(t, types.CategoryBoardMeeting, a.Category)
		assert.Equal(t, "28 Aug 2026", a.DateDisplay)
		assert.Equal(t, "02:30 PM", a.TimeDisplay)
		assert.Equal(t, "https://www.bseindia.com/xml-data/corpfiling/AttachLive/acme.pdf", a.PDFURL)
	})

	t.Run("fallback shape", func(t *testing.T) {
		raw := []types.RawAnnouncement{
			{
				"COMPANY_NAME": "Beta Corp",
				"SYMBOL":       "BETA",
				"SUBJECT":      "Declaration of Interim Dividend",
				"DATE":         "28-Aug-2026 10:00:00",
				"ATTACHMENT":   "",
			},
		}
		got := ProcessAnnouncements(raw, nil)
		require.Len(t, got, 1)

		a := got[0]
		assert.Equal(t, "Beta Corp", a.Company)
		assert.Equal(t, "BETA", a.ScripCode)
		assert.Equal(t, types.CategoryDividend, a.Category)
		assert.Empty(t, a.PDFURL)
	})

	t.Run("missing company defaults to Unknown", func(t *testing.T) {
		raw := []types.RawAnnouncement{
			{"NEWSSUB": "Clarification on news item", "NEWS_DT": "28-Aug-2026 10:00:00"},
		}
		got := ProcessAnnouncements(raw, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "Unknown", got[0].Company)
	})

	t.Run("numeric scrip code is stringified", func(t *testing.T) {
		raw := []types.RawAnnouncement{
			{"SCRIP_CD": float64(500325), "NEWSSUB": "Q1 results", "NEWS_DT": "28-Aug-2026 10:00:00"},
		}
		got := ProcessAnnouncements(raw, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "500325", got[0].ScripCode)
	})
}

func TestProcessAnnouncementsDedup(t *testing.T) {
	t.Run("identical records collapse", func(t *testing.T) {
		rec := bseRecord("Acme", "500001", "Outcome of Board Meeting", "28-Aug-2026 14:30:00", "")
		got := ProcessAnnouncements([]types.RawAnnouncement{rec, rec}, nil)
		assert.Len(t, got, 1)
	})

	t.Run("difference past the 50th subject character still collapses", func(t *testing.T) {
		prefix := strings.Repeat("a", 50)
		first := bseRecord("Acme", "500001", prefix+" original tail", "28-Aug-2026 14:30:00", "")
		second := bseRecord("Acme", "500001", prefix+" different tail", "28-Aug-2026 14:30:00", "")
		got := ProcessAnnouncements([]types.RawAnnouncement{first, second}, nil)
		require.Len(t, got, 1)
		// First occurrence wins.
		assert.Contains(t, got[0].Subject, "original tail")
	})

	t.Run("different scrip codes stay distinct", func(t *testing.T) {
		first := bseRecord("Acme", "500001", "Outcome of Board Meeting", "28-Aug-2026 14:30:00", "")
		second := bseRecord("Acme", "500002", "Outcome of Board Meeting", "28-Aug-2026 14:30:00", "")
		got := ProcessAnnouncements([]types.RawAnnouncement{first, second}, nil)
		assert.Len(t, got, 2)
	})
}

func TestParseNewsDate(t *testing.T) {
	t.Run("iso with Z equals iso with offset", func(t *testing.T) {
		zTime, _, _ := parseNewsDate("2026-08-28T14:30:00Z")
		offsetTime, _, _ := parseNewsDate("2026-08-28T14:30:00+00:00")
		assert.True(t, zTime.Equal(offsetTime))
	})

	t.Run("exchange format", func(t *testing.T) {
		parsed, dateStr, timeStr := parseNewsDate("28-Aug-2026 14:30:00")
		assert.Equal(t, time.Date(2026, time.August, 28, 14, 30, 0, 0, time.UTC), parsed)
		assert.Equal(t, "28 Aug 2026", dateStr)
		assert.Equal(t, "02:30 PM", timeStr)
	})

	t.Run("malformed date yields sentinel display without failing", func(t *testing.T) {
		_, dateStr, timeStr := parseNewsDate("garbage date value here")
		assert.Equal(t, "garbage dat", dateStr)
		assert.Empty(t, timeStr)
	})

	t.Run("empty date falls back to now", func(t *testing.T) {
		parsed, _, _ := parseNewsDate("")
		assert.WithinDuration(t, time.Now(), parsed, time.Minute)
	})
}

func TestProcessAnnouncementsEndToEnd(t *testing.T) {
	raw := []types.RawAnnouncement{
		bseRecord("Acme", "500001", "Outcome of Board Meeting", "30-Aug-2026 09:00:00", ""),
		bseRecord("Beta", "500002", "Declaration of Interim Dividend", "29-Aug-2026 09:00:00", ""),
		bseRecord("Gamma", "500003", "Receipt of work contract", "01-Jan-2027 09:00:00", ""),
		bseRecord("Acme", "500001", "Outcome of Board Meeting", "30-Aug-2026 09:00:00", ""),
		bseRecord("Acme", "500001", "Outcome of Board Meeting", "30-Aug-2026 09:00:00", ""),
	}

	got := ProcessAnnouncements(raw, nil)
	require.Len(t, got, 3)

	// Descending string sort on the display date: "30 Aug 2026" beats
	// "29 Aug 2026" and also "01 Jan 2027", even though the latter is the
	// more recent instant. This mirrors upstream behavior.
	assert.Equal(t, "30 Aug 2026", got[0].DateDisplay)
	assert.Equal(t, "01 Jan 2027", got[2].DateDisplay)
}

func TestProcessAnnouncementsPDFText(t *testing.T) {
	t.Run("extracted text feeds highlights", func(t *testing.T) {
		raw := []types.RawAnnouncement{
			bseRecord("Acme", "500001", "Financial Results", "30-Aug-2026 09:00:00", "acme.pdf"),
		}
		pdfText := func(url string) (string, error) {
			return "Revenue: Rs. 1,500 crore for the quarter", nil
		}
		got := ProcessAnnouncements(raw, pdfText)
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Highlights, "REVENUE: 1,500")
	})

	t.Run("extraction failure falls back to subject", func(t *testing.T) {
		raw := []types.RawAnnouncement{
			bseRecord("Acme", "500001", "Financial Results", "30-Aug-2026 09:00:00", "acme.pdf"),
		}
		pdfText := func(url string) (string, error) {
			return "", fmt.Errorf("download failed")
		}
		got := ProcessAnnouncements(raw, pdfText)
		require.Len(t, got, 1)
		assert.NotEmpty(t, got[0].Highlights)
	})

	t.Run("no extraction without attachment", func(t *testing.T) {
		raw := []types.RawAnnouncement{
			bseRecord("Acme", "500001", "Financial Results", "30-Aug-2026 09:00:00", ""),
		}
		called := false
		pdfText := func(url string) (string, error) {
			called = true
			return "", nil
		}
		ProcessAnnouncements(raw, pdfText)
		assert.False(t, called)
	})
}
