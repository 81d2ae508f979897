package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboardly/internal/models"
)

const licenseReportJSON = `{
	"document_type": "Nursing License",
	"validation": {
		"name": {"status": "PASS", "notes": ""},
		"license_number": {"status": "FAIL", "notes": "partially obscured"}
	},
	"extracted_info": {
		"name": "Jane Doe",
		"license_number": null,
		"batch": 2024
	},
	"notes": "Bottom edge of the scan is cut off."
}`

func TestParseReport(t *testing.T) {
	report, err := parseReport(licenseReportJSON)
	require.NoError(t, err)

	assert.Equal(t, "Nursing License", report.DocumentType)
	assert.Equal(t, models.StatusFail, report.Validation["license_number"].Status)
	assert.Equal(t, "Jane Doe", report.ExtractedInfo["name"])
	// Nulls coerce to empty, numbers to their literal form.
	assert.Equal(t, "", report.ExtractedInfo["license_number"])
	assert.Equal(t, "2024", report.ExtractedInfo["batch"])
	assert.Equal(t, "Bottom edge of the scan is cut off.", report.Notes)
}

func TestParseReportStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + licenseReportJSON + "\n```"
	report, err := parseReport(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Nursing License", report.DocumentType)
}

func TestParseReportExtractsEmbeddedJSON(t *testing.T) {
	chatty := "Sure! Here is the analysis you asked for:\n" + licenseReportJSON + "\nLet me know if you need anything else."
	report, err := parseReport(chatty)
	require.NoError(t, err)
	assert.Equal(t, "Nursing License", report.DocumentType)
}

func TestParseReportInvalid(t *testing.T) {
	_, err := parseReport("the model refused to answer")
	assert.Error(t, err)
}

func TestParseReportMissingValidation(t *testing.T) {
	report, err := parseReport(`{"document_type": "Employment Contract"}`)
	require.NoError(t, err)
	assert.NotNil(t, report.Validation)
	assert.NotNil(t, report.ExtractedInfo)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}

func TestExtractFirstJSON(t *testing.T) {
	got, ok := extractFirstJSON(`noise {"a": {"b": 2}} trailing`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 2}}`, got)

	got, ok = extractFirstJSON(`[1, 2, 3]`)
	require.True(t, ok)
	assert.Equal(t, `[1, 2, 3]`, got)

	_, ok = extractFirstJSON("no json here")
	assert.False(t, ok)
}
