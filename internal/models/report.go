package models

// Field validation statuses shared by the extraction report, the registry
// check and the onboarding checklist.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// FieldResult is the per-field outcome of a document validation.
type FieldResult struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// DocumentReport is the structured answer of the vision extraction step: the
// detected document type, the per-field presence check, and the raw extracted
// values keyed by field name.
type DocumentReport struct {
	DocumentType  string                 `json:"document_type"`
	Validation    map[string]FieldResult `json:"validation"`
	ExtractedInfo map[string]string      `json:"extracted_info"`
	Notes         string                 `json:"notes"`
}
