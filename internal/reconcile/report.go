package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"onboardly/internal/models"
)

// BuildReport flattens a match result into the PASS/FAIL entry that callers
// merge into a document's validation results under the database_check key.
// Partial and no-match verdicts both fail; the notes keep the richer mismatch
// detail so a human can resolve the discrepancy.
func BuildReport(result MatchResult) models.FieldResult {
	if result.Verdict == ExactMatch {
		return models.FieldResult{
			Status: models.StatusPass,
			Notes:  "License data verified successfully against the reference registry.",
		}
	}

	var b strings.Builder
	b.WriteString("License data does not match registry records.")
	if len(result.Mismatches) > 0 {
		b.WriteString("\nMismatched fields:\n")
		names := make([]string, 0, len(result.Mismatches))
		for name := range result.Mismatches {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			m := result.Mismatches[name]
			fmt.Fprintf(&b, "- %s: extracted='%s', reference='%s'\n", name, m.Extracted, m.Reference)
		}
	}
	return models.FieldResult{Status: models.StatusFail, Notes: b.String()}
}
