package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini implements the Extractor interface using Google Gemini. Extraction
// runs in two stages: an OCR pass over the image, then an analysis pass that
// converts the transcription into delimited rows of the configured format.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	format Format
}

// NewGemini creates a new Gemini Extractor instance
func NewGemini(apiKey string, modelName string, format Format) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  client.GenerativeModel(modelName),
		format: format,
	}, nil
}

// ExtractRows transcribes the document and converts the transcription into
// delimited rows. Fail-fast: any model error surfaces immediately, no retry.
func (g *Gemini) ExtractRows(imageData []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Everything is PNG after preparation, so the image part is always "png"
	finalImageData, _, _, err := prepareImageData(imageData, contentType)
	if err != nil {
		return "", err
	}

	transcript, err := g.generate(ctx,
		genai.ImageData("png", finalImageData),
		genai.Text(ocrPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("ocr pass: %w", err)
	}
	if transcript == "" {
		return "", fmt.Errorf("empty transcription from gemini")
	}

	rows, err := g.generate(ctx, genai.Text(g.format.AnalysisPrompt(transcript)))
	if err != nil {
		return "", fmt.Errorf("analysis pass: %w", err)
	}

	return stripFences(rows), nil
}

// generate runs one GenerateContent call and concatenates the text parts.
func (g *Gemini) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	resp, err := g.model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// stripFences removes markdown code fences models sometimes wrap output in
// despite instructions.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```csv")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// Close closes the Gemini client
func (g *Gemini) Close() error {
	return g.client.Close()
}
