package checklist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboardly/internal/models"
)

func passAll(fields []string) map[string]models.FieldResult {
	results := make(map[string]models.FieldResult, len(fields))
	for _, f := range fields {
		results[f] = models.FieldResult{Status: models.StatusPass}
	}
	return results
}

func TestNewTemplate(t *testing.T) {
	cl := New()
	require.Contains(t, cl, DocNursingLicense)
	require.Contains(t, cl, DocEmploymentContract)
	assert.Equal(t, StatusPending, cl[DocNursingLicense].Status)
	assert.Equal(t, StatusPending, cl[DocNursingLicense].RequiredFields[DatabaseCheckField])
}

func TestUpdateAllPass(t *testing.T) {
	cl := New()
	cl = Update(cl, DocNursingLicense, passAll(DocumentFields[DocNursingLicense]), "")

	doc := cl[DocNursingLicense]
	assert.Equal(t, StatusCompleted, doc.Status)
	for f, status := range doc.RequiredFields {
		assert.Equal(t, models.StatusPass, status, "field %s", f)
	}
}

func TestUpdateFailedFieldAccumulatesNotes(t *testing.T) {
	results := passAll(DocumentFields[DocNursingLicense])
	results[DatabaseCheckField] = models.FieldResult{
		Status: models.StatusFail,
		Notes:  "License data does not match registry records.",
	}

	cl := Update(New(), DocNursingLicense, results, "extra observation")
	doc := cl[DocNursingLicense]

	assert.Equal(t, StatusIncomplete, doc.Status)
	assert.Equal(t, models.StatusFail, doc.RequiredFields[DatabaseCheckField])
	assert.Contains(t, doc.Notes, "database_check: License data does not match")
	assert.Contains(t, doc.Notes, "extra observation")
}

func TestUpdateMissingFieldFails(t *testing.T) {
	results := passAll(DocumentFields[DocEmploymentContract])
	delete(results, "signature")

	cl := Update(New(), DocEmploymentContract, results, "")
	doc := cl[DocEmploymentContract]

	assert.Equal(t, StatusIncomplete, doc.Status)
	assert.Equal(t, models.StatusFail, doc.RequiredFields["signature"])
	assert.Contains(t, doc.Notes, "signature: Missing in validation results.")
}

func TestUpdateUnknownDocumentType(t *testing.T) {
	cl := Update(New(), "Parking Permit", nil, "")
	require.Contains(t, cl, "Parking Permit")
	assert.Equal(t, StatusUnknownDoc, cl["Parking Permit"].Status)
	assert.Empty(t, cl["Parking Permit"].RequiredFields)
}

func TestProgressCountsOnlyFullyPassedDocuments(t *testing.T) {
	cl := New()
	assert.Equal(t, 0.0, Progress(cl))

	// Contract fully passes: 4 of 11 fields.
	cl = Update(cl, DocEmploymentContract, passAll(DocumentFields[DocEmploymentContract]), "")
	assert.InDelta(t, 36.36, Progress(cl), 0.01)

	// A partially-passed license contributes nothing.
	results := passAll(DocumentFields[DocNursingLicense])
	results[DatabaseCheckField] = models.FieldResult{Status: models.StatusFail}
	cl = Update(cl, DocNursingLicense, results, "")
	assert.InDelta(t, 36.36, Progress(cl), 0.01)

	cl = Update(cl, DocNursingLicense, passAll(DocumentFields[DocNursingLicense]), "")
	assert.Equal(t, 100.0, Progress(cl))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	// Missing state loads as a fresh template.
	cl, err := store.Load(ctx, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, cl[DocNursingLicense].Status)

	cl = Update(cl, DocEmploymentContract, passAll(DocumentFields[DocEmploymentContract]), "")
	require.NoError(t, store.Save(ctx, "Jane Doe", cl))

	loaded, err := store.Load(ctx, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, loaded[DocEmploymentContract].Status)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "jane-doe", slug("Jane Doe"))
	assert.Equal(t, "default", slug("  ***  "))
	assert.Equal(t, "a-b-c", slug("A_b.C"))
}
