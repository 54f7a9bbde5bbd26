package process

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/phuslu/log"

	"github.com/shanehull/bsetracker/internal/types"
)

const (
	pdfBaseURL        = "https://www.bseindia.com/xml-data/corpfiling/AttachLive"
	dedupSubjectLen   = 50
	subjectDisplayLen = 200
)

// PDFTextFunc fetches raw text for an attachment URL. Nil disables extraction.
type PDFTextFunc func(pdfURL string) (string, error)

// fieldChain lists candidate raw field names for one logical attribute,
// tried in order; the two known upstream shapes are reconciled here.
var (
	companyFields    = []string{"SLONGNAME", "COMPANY_NAME"}
	scripFields      = []string{"SCRIP_CD", "SYMBOL"}
	subjectFields    = []string{"NEWSSUB", "SUBJECT"}
	dateFields       = []string{"NEWS_DT", "DATE"}
	attachmentFields = []string{"ATTACHMENTNAME", "ATTACHMENT"}
)

// ProcessAnnouncements normalizes raw records into canonical Announcements,
// dropping in-run duplicates and records that fail mid-pipeline. The result
// is sorted by display date string descending; this is a string sort on the
// pre-formatted date, matching upstream behavior, not a chronological sort.
func ProcessAnnouncements(raw []types.RawAnnouncement, pdfText PDFTextFunc) []types.Announcement {
	var processed []types.Announcement
	seen := make(map[string]struct{})

	for _, rec := range raw {
		ann, err := processOne(rec, seen, pdfText)
		if err != nil {
			log.Warn().Err(err).Msg("skipping announcement")
			continue
		}
		if ann == nil {
			// In-run duplicate.
			continue
		}
		processed = append(processed, *ann)
	}

	sort.SliceStable(processed, func(i, j int) bool {
		return processed[i].DateDisplay > processed[j].DateDisplay
	})

	return processed
}

// processOne builds one Announcement, or returns nil when the record is a
// duplicate of one already seen this run.
func processOne(rec types.RawAnnouncement, seen map[string]struct{}, pdfText PDFTextFunc) (ann *types.Announcement, err error) {
	defer func() {
		if r := recover(); r != nil {
			ann = nil
			err = fmt.Errorf("panic while processing record: %v", r)
		}
	}()

	if rec == nil {
		return nil, fmt.Errorf("nil record")
	}

	company := stringField(rec, companyFields, "Unknown")
	scripCode := stringField(rec, scripFields, "")
	subject := stringField(rec, subjectFields, "")
	rawDate := stringField(rec, dateFields, "")
	attachment := stringField(rec, attachmentFields, "")

	key := dedupKey(scripCode, subject, rawDate)
	if _, dup := seen[key]; dup {
		return nil, nil
	}
	seen[key] = struct{}{}

	occurredAt, dateStr, timeStr := parseNewsDate(rawDate)

	pdfURL := ""
	if attachment != "" {
		pdfURL = pdfBaseURL + "/" + attachment
	}

	category := Categorize(subject, "")

	extractionText := subject
	if pdfText != nil && pdfURL != "" {
		text, textErr := pdfText(pdfURL)
		if textErr != nil {
			log.Warn().Err(textErr).Str("scrip", scripCode).Msg("pdf text extraction failed, using subject only")
		} else {
			extractionText = subject + " " + text
		}
	}

	highlights := ExtractHighlights(extractionText, category)
	implication := AssessImplication(subject+" "+highlights, category)

	if len(subject) > subjectDisplayLen {
		subject = subject[:subjectDisplayLen]
	}

	return &types.Announcement{
		Company:        company,
		ScripCode:      scripCode,
		Subject:        subject,
		OccurredAt:     occurredAt,
		DateDisplay:    dateStr,
		TimeDisplay:    timeStr,
		AttachmentPath: attachment,
		PDFURL:         pdfURL,
		Category:       category,
		Highlights:     highlights,
		Implication:    implication,
	}, nil
}

// dedupKey is the composite in-run identity: scrip code, first 50 characters
// of subject and the raw date field. Records differing only past the 50th
// subject character collapse together.
func dedupKey(scripCode, subject, rawDate string) string {
	if len(subject) > dedupSubjectLen {
		subject = subject[:dedupSubjectLen]
	}
	return scripCode + "_" + subject + "_" + rawDate
}

// parseNewsDate parses the raw date field tolerantly: ISO-8601 with zone
// (including a bare Z suffix), then the upstream's "02-Jan-2006 15:04:05"
// form, then now. An unparseable non-empty string yields its prefix as the
// display date rather than failing the record.
func parseNewsDate(raw string) (time.Time, string, string) {
	var t time.Time
	var err error

	switch {
	case raw == "":
		t = time.Now()
	case strings.Contains(raw, "T"):
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			// Zone-less ISO timestamps show up occasionally.
			t, err = time.Parse("2006-01-02T15:04:05", raw)
		}
	default:
		t, err = time.Parse("02-Jan-2006 15:04:05", raw)
	}

	if err != nil {
		display := raw
		if len(display) > 11 {
			display = display[:11]
		}
		return time.Time{}, display, ""
	}

	return t, t.Format("02 Jan 2006"), t.Format("03:04 PM")
}

// stringField returns the first present, non-empty candidate field,
// stringified, else the default.
func stringField(rec types.RawAnnouncement, candidates []string, def string) string {
	for _, name := range candidates {
		v, ok := rec[name]
		if !ok || v == nil {
			continue
		}
		s := fmt.Sprintf("%v", v)
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return def
}
