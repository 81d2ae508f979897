package checklist

import (
	"fmt"
	"math"

	"onboardly/internal/models"
)

// Known onboarding document types and the reserved registry-check field.
const (
	DocEmploymentContract = "Employment Contract"
	DocNursingLicense     = "Nursing License"
	DatabaseCheckField    = "database_check"

	StatusPending    = "Pending"
	StatusCompleted  = "Completed"
	StatusIncomplete = "Incomplete"
	StatusUnknownDoc = "Unknown Document"
)

// DocumentFields maps each onboarding document type to its required fields.
// The nursing license includes the registry verification as a required field
// so an unverified license can never complete the checklist.
var DocumentFields = map[string][]string{
	DocEmploymentContract: {"employee_name", "start_date", "position", "signature"},
	DocNursingLicense: {
		"name",
		"date_of_birth",
		"license_number",
		"gender",
		"to_practice_as",
		"valid_until",
		DatabaseCheckField,
	},
}

// Document tracks one document type's progress on the checklist.
type Document struct {
	Status         string            `json:"status"`
	Notes          string            `json:"notes"`
	RequiredFields map[string]string `json:"required_fields"`
}

// Checklist is the per-employee onboarding state, keyed by document type.
type Checklist map[string]*Document

// New returns a fresh checklist with every required field Pending.
func New() Checklist {
	cl := make(Checklist, len(DocumentFields))
	for docType, fields := range DocumentFields {
		required := make(map[string]string, len(fields))
		for _, f := range fields {
			required[f] = StatusPending
		}
		cl[docType] = &Document{Status: StatusPending, RequiredFields: required}
	}
	return cl
}

// Update applies validation results for one document to the checklist.
// Unknown document types get a placeholder entry; fields absent from the
// results fail. Notes accumulate across updates.
func Update(cl Checklist, docType string, results map[string]models.FieldResult, notes string) Checklist {
	doc, ok := cl[docType]
	if !ok {
		cl[docType] = &Document{
			Status:         StatusUnknownDoc,
			Notes:          "Document type not recognized in onboarding checklist.",
			RequiredFields: map[string]string{},
		}
		return cl
	}

	allPassed := true
	for f := range doc.RequiredFields {
		result, ok := results[f]
		if !ok {
			doc.RequiredFields[f] = models.StatusFail
			allPassed = false
			doc.Notes += fmt.Sprintf("%s: Missing in validation results.\n", f)
			continue
		}
		doc.RequiredFields[f] = result.Status
		if result.Status != models.StatusPass {
			allPassed = false
			doc.Notes += fmt.Sprintf("%s: %s\n", f, result.Notes)
		}
	}

	if allPassed {
		doc.Status = StatusCompleted
	} else {
		doc.Status = StatusIncomplete
	}
	if notes != "" {
		doc.Notes += notes
	}
	return cl
}

// Progress reports the percentage of checklist fields belonging to fully
// validated documents. A document counts only when every one of its fields
// passed.
func Progress(cl Checklist) float64 {
	total := 0
	passed := 0
	for _, doc := range cl {
		total += len(doc.RequiredFields)
		allPassed := len(doc.RequiredFields) > 0
		for _, status := range doc.RequiredFields {
			if status != models.StatusPass {
				allPassed = false
				break
			}
		}
		if allPassed {
			passed += len(doc.RequiredFields)
		}
	}
	if total == 0 {
		return 0
	}
	return math.Round(float64(passed)/float64(total)*10000) / 100
}
