package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"onboardly/internal/models"
)

func TestBuildReportPass(t *testing.T) {
	report := BuildReport(MatchResult{Verdict: ExactMatch, Mismatches: map[string]Mismatch{}})
	assert.Equal(t, models.StatusPass, report.Status)
	assert.Contains(t, report.Notes, "verified successfully")
}

func TestBuildReportPartial(t *testing.T) {
	report := BuildReport(MatchResult{
		Verdict: PartialMatch,
		Mismatches: map[string]Mismatch{
			"full_name":      {Extracted: "Jane Doe", Reference: "Janet Doe"},
			"license_number": {Extracted: "RN-123", Reference: "RN-124"},
		},
	})

	assert.Equal(t, models.StatusFail, report.Status)
	assert.Contains(t, report.Notes, "full_name: extracted='Jane Doe', reference='Janet Doe'")
	assert.Contains(t, report.Notes, "license_number: extracted='RN-123', reference='RN-124'")
}

func TestBuildReportNoMatch(t *testing.T) {
	report := BuildReport(Match(map[string]string{"name": "Jane Doe"}, NewStore(nil)))
	assert.Equal(t, models.StatusFail, report.Status)
	assert.Contains(t, report.Notes, "no records available")
}
