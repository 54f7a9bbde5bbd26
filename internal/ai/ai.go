/*
Package ai produces an optional Gemini digest of a run's announcements for
the email report.
*/
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/shanehull/bsetracker/internal/types"
)

// digestInputLimit caps how many announcements are sent for digestion; the
// feed can run to hundreds of records a day and the leaders carry the signal.
const digestInputLimit = 50

var systemInstruction = `You are a financial analyst covering Indian listed companies.

You will be given a list of corporate disclosure announcements from the BSE, one per line, each with company name, category, subject and a heuristic investment-implication rating.

Produce a digest of the most financially significant items of the day. Focus on results, large orders, acquisitions, fund raising and anything with clear valuation impact. Ignore routine procedural filings (board meeting intimations, AGM notices, trading windows) unless they signal something material.

Each bullet must name the company and state the concrete fact. Avoid generic statements.`

type digestResponse struct {
	Digest []string `json:"digest"`
}

// GenerateDigest summarizes the run's announcements into a short bullet list.
func GenerateDigest(ctx context.Context, anns []types.Announcement, apiKey string, modelName string) ([]string, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	input := anns
	if len(input) > digestInputLimit {
		input = input[:digestInputLimit]
	}

	var sb strings.Builder
	for _, a := range input {
		sb.WriteString(fmt.Sprintf("%s | %s | %s | %s\n", a.Company, a.Category, a.Subject, a.Implication))
	}
	prompt := fmt.Sprintf("Digest the following announcements:\n\n---\n%s", sb.String())

	contents := []*genai.Content{
		{Role: "system", Parts: []*genai.Part{{Text: systemInstruction}}},
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   getResponseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	respText := resp.Text()

	var digest digestResponse
	if err := json.Unmarshal([]byte(respText), &digest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini JSON response: %w. Raw text: %s", err, respText)
	}

	return digest.Digest, nil
}

func getResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"digest": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "A list of 5-10 concise bullet points covering the day's most significant announcements.",
			},
		},
		Required: []string{"digest"},
	}
}
