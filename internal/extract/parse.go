package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"onboardly/internal/models"
)

// parseReport decodes the model's JSON answer into a DocumentReport. The
// model is asked for JSON only, but responses still occasionally arrive
// wrapped in markdown fences or with leading prose, so the raw text is
// cleaned before decoding. Extracted values that come back as non-strings
// (numbers, nulls) are coerced to their string form.
func parseReport(raw string) (models.DocumentReport, error) {
	var report models.DocumentReport

	jsonStr := stripCodeFences(raw)
	if candidate, ok := extractFirstJSON(jsonStr); ok {
		jsonStr = candidate
	}

	var wire struct {
		DocumentType  string                        `json:"document_type"`
		Validation    map[string]models.FieldResult `json:"validation"`
		ExtractedInfo map[string]any                `json:"extracted_info"`
		Notes         string                        `json:"notes"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
		return report, fmt.Errorf("failed to parse model JSON: %w", err)
	}

	report.DocumentType = strings.TrimSpace(wire.DocumentType)
	report.Notes = strings.TrimSpace(wire.Notes)
	report.Validation = wire.Validation
	if report.Validation == nil {
		report.Validation = map[string]models.FieldResult{}
	}

	report.ExtractedInfo = make(map[string]string, len(wire.ExtractedInfo))
	for k, v := range wire.ExtractedInfo {
		if v == nil {
			report.ExtractedInfo[k] = ""
			continue
		}
		switch t := v.(type) {
		case string:
			report.ExtractedInfo[k] = strings.TrimSpace(t)
		default:
			b, _ := json.Marshal(t)
			report.ExtractedInfo[k] = strings.TrimSpace(string(b))
		}
	}
	return report, nil
}

// stripCodeFences removes surrounding Markdown code fences like ```json ... ```.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// drop leading backticks and optional language tag
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
		if i := strings.IndexByte(s, '\n'); i != -1 {
			first := strings.TrimSpace(s[:i])
			if len(first) > 0 && len(first) < 20 { // likely a language tag like json
				s = s[i+1:]
			}
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// extractFirstJSON attempts to extract the first balanced JSON object or array.
func extractFirstJSON(s string) (string, bool) {
	if obj, ok := extractBalanced(s, '{', '}'); ok {
		return obj, true
	}
	if arr, ok := extractBalanced(s, '[', ']'); ok {
		return arr, true
	}
	return "", false
}

func extractBalanced(s string, open, close rune) (string, bool) {
	start := -1
	depth := 0
	for i, r := range s {
		if r == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if r == close {
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
