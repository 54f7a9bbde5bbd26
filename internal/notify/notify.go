/*
Package notify emails the rendered report to the configured recipient.
*/
package notify

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	gomail "gopkg.in/mail.v2"

	"github.com/shanehull/bsetracker/internal/report"
)

// EmailConfig holds SMTP configuration for sending the report email.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
}

// ReportData is everything the email needs beyond SMTP config.
type ReportData struct {
	Summary        report.Summary
	AttachmentPath string
	SheetID        string
	Digest         []string
}

// SendReport emails the summary with the workbook attached.
func SendReport(cfg EmailConfig, data ReportData) error {
	now := time.Now()

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.FromEmail)
	m.SetHeader("To", cfg.ToEmail)
	m.SetHeader("Subject", fmt.Sprintf("India Corporate Announcements - %s (%d updates)",
		now.Format("02 Jan 2006"), data.Summary.Total))
	m.SetBody("text/plain", renderBody(data, now))

	if data.AttachmentPath != "" {
		m.Attach(data.AttachmentPath, gomail.Rename(filepath.Base(data.AttachmentPath)))
	}

	dialer := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dialer.Timeout = 10 * time.Second

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send report email to %s: %w", cfg.ToEmail, err)
	}
	return nil
}

// renderBody produces the plain-text email body: run counts, the optional
// AI digest and a link to the shared sheet.
func renderBody(data ReportData, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("Hello,\n\n")
	sb.WriteString("Your daily India Corporate Announcements report is ready.\n\n")
	sb.WriteString("Summary:\n")
	sb.WriteString(fmt.Sprintf("- Total Announcements: %d\n", data.Summary.Total))
	sb.WriteString(fmt.Sprintf("- Report Date: %s\n", now.Format("02 January 2006")))
	sb.WriteString(fmt.Sprintf("- Time: %s IST\n\n", now.Format("03:04 PM")))

	if len(data.Summary.Categories) > 0 {
		sb.WriteString("By Category:\n")
		for _, c := range data.Summary.Categories {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", c.Label, c.Count))
		}
		sb.WriteString("\n")
	}

	if len(data.Digest) > 0 {
		sb.WriteString("AI Digest:\n")
		for _, line := range data.Digest {
			sb.WriteString(fmt.Sprintf("- %s\n", line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("The Excel report is attached.")
	if data.SheetID != "" {
		sb.WriteString(" You can also view the live data in your Google Sheet:\n")
		sb.WriteString(fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit\n", data.SheetID))
	} else {
		sb.WriteString("\n")
	}

	sb.WriteString("\n---\nThis is an automated report from your India Corporate Announcements Tracker.\n")

	return sb.String()
}
