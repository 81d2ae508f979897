package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"onboardly/internal/models"
)

const defaultVisionModel = "gemini-2.0-flash-lite"

const documentPrompt = `You are an assistant that analyzes scanned onboarding documents.

Step 1: Identify the type of document. Examples include: Employment Contract, Nursing License, etc.

Step 2: Based on the identified document type, check if all required fields are present and clear. For example:

- Employment Contract: employee_name, start_date, position, signature
- Nursing License: name, date_of_birth, license_number, gender, to_practice_as, valid_until

Step 3: Extract all required information fields.

Step 4: For each required field, indicate if it is present and clear ("PASS") or missing/unclear ("FAIL") with notes.

Step 5: If the document type does not match the expected onboarding document types, respond accordingly.

Please respond in the following JSON format:

{
  "document_type": "Detected Document Type",
  "validation": {
    "field_name": {"status": "PASS/FAIL", "notes": "..."},
    ...
  },
  "extracted_info": {
    "field_name": "extracted value",
    ...
  },
  "notes": "Any additional observations"
}`

const ocrTextPrompt = documentPrompt + `

Here is the raw OCR text of the document:
"""
[INSERT RAW OCR TEXT HERE]
"""`

// Validator classifies an uploaded document image and extracts its fields
// through a vision-capable Gemini model.
type Validator struct {
	model string
}

func NewValidator(model string) *Validator {
	if strings.TrimSpace(model) == "" {
		model = defaultVisionModel
	}
	return &Validator{model: model}
}

// ValidateImage sends the document image straight to the vision model.
func (v *Validator) ValidateImage(ctx context.Context, image []byte, mimeType string) (models.DocumentReport, error) {
	format := strings.TrimPrefix(strings.TrimSpace(mimeType), "image/")
	if format == "" || format == mimeType {
		format = "jpeg"
	}
	return v.generate(ctx, genai.Text(documentPrompt), genai.ImageData(format, image))
}

// ValidateText runs the same extraction over raw OCR text, for deployments
// that front the model with a dedicated OCR pass.
func (v *Validator) ValidateText(ctx context.Context, ocrText string) (models.DocumentReport, error) {
	prompt := strings.Replace(ocrTextPrompt, "[INSERT RAW OCR TEXT HERE]", ocrText, 1)
	return v.generate(ctx, genai.Text(prompt))
}

func (v *Validator) generate(ctx context.Context, parts ...genai.Part) (models.DocumentReport, error) {
	var out models.DocumentReport

	apiKey := os.Getenv("GEMINI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return out, errors.New("missing GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return out, fmt.Errorf("failed to init Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(v.model)
	// Ask Gemini to return JSON only
	model.GenerationConfig = genai.GenerationConfig{ResponseMIMEType: "application/json"}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return out, fmt.Errorf("gemini generation failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return out, errors.New("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		} else {
			sb.WriteString(fmt.Sprint(part))
		}
	}
	jsonStr := strings.TrimSpace(sb.String())
	if jsonStr == "" {
		return out, errors.New("no text in Gemini response")
	}

	return parseReport(jsonStr)
}
