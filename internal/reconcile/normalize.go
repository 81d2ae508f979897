package reconcile

import (
	"strings"
	"time"
)

// dateLayouts is the accepted input order: ISO first, then day-first, then
// month-first. An ambiguous value like 03/04/2024 therefore resolves
// day-first by priority, not by locale, which is a known source of
// misclassification for month-first documents.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "01/02/2006"}

// NormalizeText lowercases raw and strips every character that is not an
// ASCII letter or digit. This deliberately collapses whitespace, punctuation
// and diacritics-adjacent characters so that OCR and LLM extraction noise does
// not produce spurious mismatches. Idempotent.
func NormalizeText(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeDate parses raw against the accepted layouts in priority order and
// renders the first hit as YYYY-MM-DD. Unparseable input normalizes to the
// empty string rather than erroring.
func NormalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
