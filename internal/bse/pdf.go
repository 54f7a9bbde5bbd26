package bse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"
)

const pdfProcessingTimeout = 60 * time.Second

// ExtractPDFText downloads the attachment at pdfURL and extracts its raw text
// with pdftotext. Best effort: callers fall back to subject-only extraction
// on any error.
func (c *Client) ExtractPDFText(pdfURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, pdfURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build PDF request: %w", err)
	}
	setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download PDF from %s: %w", pdfURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download PDF: received status code %d from %s", resp.StatusCode, pdfURL)
	}

	pdfBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF response body: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pdfProcessingTimeout)
	defer cancel()

	return pdfToText(ctx, pdfBytes)
}

// pdfToText runs the pdftotext binary over the PDF bytes via a temp file.
func pdfToText(ctx context.Context, pdfBytes []byte) (string, error) {
	tmpFile, err := os.CreateTemp("", "bse_pdf_*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpFileName := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpFileName)

	if err := os.WriteFile(tmpFileName, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("failed to write PDF bytes to temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, "pdftotext", "-raw", tmpFileName, "-")

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("PDF text extraction timed out after %s", pdfProcessingTimeout)
		}
		errMsg := strings.TrimSpace(stderr.String())
		if strings.Contains(err.Error(), "executable file not found") {
			return "", fmt.Errorf("pdftotext binary not found, ensure poppler-utils is installed")
		}
		return "", fmt.Errorf("pdftotext failed: %w. Stderr: %s", err, errMsg)
	}

	text := out.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("pdftotext extracted empty text string, file may be image-based or protected")
	}

	return text, nil
}
