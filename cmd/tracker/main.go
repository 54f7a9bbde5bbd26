package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phuslu/log"

	"github.com/shanehull/bsetracker/internal/ai"
	"github.com/shanehull/bsetracker/internal/bse"
	"github.com/shanehull/bsetracker/internal/config"
	"github.com/shanehull/bsetracker/internal/logging"
	"github.com/shanehull/bsetracker/internal/notify"
	"github.com/shanehull/bsetracker/internal/process"
	"github.com/shanehull/bsetracker/internal/report"
)

var (
	daysBack  = flag.Int("days", 0, "(-d) Number of trailing days to fetch (overrides DAYS_BACK)")
	outputDir = flag.String("output", "", "(-o) Output directory for the Excel report (overrides OUTPUT_DIR)")
)

func init() {
	flag.IntVar(daysBack, "d", 0, "(-d) Number of trailing days to fetch (shorthand)")
	flag.StringVar(outputDir, "o", "", "(-o) Output directory for the Excel report (shorthand)")
}

func main() {
	flag.Parse()

	cfg := config.Load()
	if *daysBack > 0 {
		cfg.DaysBack = *daysBack
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	logging.Init(cfg.LogLevel)

	log.Info().Int("days", cfg.DaysBack).Msg("starting BSE announcements tracker")

	client := bse.NewClient()
	raw := client.FetchMultiDay(cfg.DaysBack, cfg.CategoryFilter)
	log.Info().Int("count", len(raw)).Msg("total raw announcements")

	var pdfText process.PDFTextFunc
	if cfg.ExtractPDFText {
		pdfText = client.ExtractPDFText
	}

	announcements := process.ProcessAnnouncements(raw, pdfText)
	log.Info().Int("count", len(announcements)).Msg("processed unique announcements")

	if len(announcements) == 0 {
		log.Warn().Msg("no announcements found, skipping report")
		return
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", cfg.OutputDir).Msg("failed to create output directory")
		os.Exit(1)
	}

	outputFile := filepath.Join(cfg.OutputDir,
		fmt.Sprintf("India_Corporate_Announcements_%s.xlsx", time.Now().Format("20060102")))

	if err := report.WriteExcel(announcements, outputFile); err != nil {
		log.Error().Err(err).Msg("failed to write Excel report")
		os.Exit(1)
	}
	log.Info().Str("file", outputFile).Msg("Excel report saved")

	ctx := context.Background()

	if cfg.SheetsEnabled() {
		if err := report.PushToGoogleSheet(ctx, cfg.GoogleCredentials, cfg.GoogleSheetID, announcements); err != nil {
			log.Warn().Err(err).Msg("Google Sheet update failed")
		} else {
			log.Info().Int("count", len(announcements)).Msg("Google Sheet updated")
		}
	} else {
		log.Info().Msg("Google Sheet not configured, skipping")
	}

	summary := report.Summarize(announcements)

	var digest []string
	if cfg.GeminiAPIKey != "" {
		var err error
		digest, err = ai.GenerateDigest(ctx, announcements, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("AI digest failed, sending report without it")
		}
	}

	if cfg.EmailEnabled() {
		emailCfg := notify.EmailConfig{
			SMTPServer: cfg.SMTPServer,
			SMTPPort:   cfg.SMTPPort,
			SMTPUser:   cfg.EmailAddress,
			SMTPPass:   cfg.EmailPassword,
			FromEmail:  cfg.EmailAddress,
			ToEmail:    cfg.NotifyEmail,
		}
		data := notify.ReportData{
			Summary:        summary,
			AttachmentPath: outputFile,
			SheetID:        cfg.GoogleSheetID,
			Digest:         digest,
		}
		if err := notify.SendReport(emailCfg, data); err != nil {
			log.Warn().Err(err).Msg("email send failed")
		} else {
			log.Info().Str("to", cfg.NotifyEmail).Msg("email sent")
		}
	} else {
		log.Info().Msg("email not configured, skipping")
	}

	log.Info().Int("total", summary.Total).Msg("report generated")
	for _, c := range summary.Categories {
		log.Info().Str("category", c.Label).Int("count", c.Count).Msg("category summary")
	}
}
