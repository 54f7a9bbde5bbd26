package types

import (
	"time"
)

// RawAnnouncement is one record as returned by the exchange API. Field names
// vary by upstream source, so it stays a loose map until normalization.
type RawAnnouncement map[string]any

// Announcement is the canonical record built once per unique raw record.
type Announcement struct {
	Company        string
	ScripCode      string
	Subject        string
	OccurredAt     time.Time
	DateDisplay    string
	TimeDisplay    string
	AttachmentPath string
	PDFURL         string
	Category       string
	Highlights     string
	Implication    string
}

// Category labels, in rule order.
const (
	CategoryBoardMeeting         = "Board Meeting"
	CategoryFinancialResults     = "Financial Results"
	CategoryDividend             = "Dividend"
	CategoryAGMEGM               = "AGM/EGM"
	CategoryAcquisition          = "Acquisition"
	CategoryInvestorPresentation = "Investor Presentation"
	CategoryFundRaising          = "Fund Raising"
	CategoryMergerDemerger       = "Merger/Demerger"
	CategoryChangeInDirectors    = "Change in Directors"
	CategoryCorporateAction      = "Corporate Action"
	CategoryConcallTranscript    = "Concall Transcript"
	CategoryOrderWin             = "Order Win"
	CategoryExpansion            = "Expansion"
	CategoryRating               = "Rating"
	CategoryOthers               = "Others"
)

// Implication ratings. The star prefixes are load-bearing: the spreadsheet
// renderer color-codes cells by substring match on them.
const (
	ImplicationPositive         = "★★★ POSITIVE"
	ImplicationModeratePositive = "★★ MODERATE POSITIVE"
	ImplicationNeutral          = "★★ NEUTRAL"
	ImplicationWatch            = "★★ WATCH"
	ImplicationCautious         = "★ CAUTIOUS"
)
