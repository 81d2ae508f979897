package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboardly/internal/models"
)

func janeRecord() models.LicenseRecord {
	return models.LicenseRecord{
		FullName:        "jane doe",
		DateOfBirth:     "1990-03-04",
		LicenseNumber:   "RN-123",
		Gender:          "F",
		ValidUntil:      "2025-01-01",
		FieldOfPractice: "RN",
	}
}

func janeExtracted() map[string]string {
	return map[string]string{
		"name":           "Jane Doe",
		"date_of_birth":  "04/03/1990",
		"license_number": "RN-123",
		"gender":         "F",
		"valid_until":    "2025-01-01",
		"to_practice_as": "RN",
	}
}

func TestMatchEndToEndExact(t *testing.T) {
	// Date formats differ but normalize equal: 04/03/1990 fails the ISO
	// layout, falls to day-first and renders 1990-03-04.
	store := NewStore([]models.LicenseRecord{janeRecord()})

	result := Match(janeExtracted(), store)

	assert.Equal(t, ExactMatch, result.Verdict)
	require.NotNil(t, result.Record)
	assert.Equal(t, "RN-123", result.Record.LicenseNumber)
	assert.Empty(t, result.Mismatches)
}

func TestMatchExactShortCircuitsOnFirstRecord(t *testing.T) {
	first := janeRecord()
	second := janeRecord()
	second.LicenseNumber = "rn 123" // normalizes to rn123, same as RN-123
	store := NewStore([]models.LicenseRecord{first, second})

	result := Match(janeExtracted(), store)

	assert.Equal(t, ExactMatch, result.Verdict)
	require.NotNil(t, result.Record)
	// Both records match exactly under normalization; the earlier one wins.
	assert.Same(t, &store.All()[0], result.Record)
}

func TestMatchBestPartialTieBreak(t *testing.T) {
	// Mismatch counts in store order: 3, 1, 1, 2. The earliest minimal
	// candidate (index 1) must win.
	base := janeRecord()

	three := base
	three.FullName = "someone else"
	three.LicenseNumber = "XX-999"
	three.Gender = "M"

	oneA := base
	oneA.LicenseNumber = "RN-124"

	oneB := base
	oneB.Gender = "M"

	two := base
	two.LicenseNumber = "RN-125"
	two.FieldOfPractice = "Midwife"

	store := NewStore([]models.LicenseRecord{three, oneA, oneB, two})

	result := Match(janeExtracted(), store)

	assert.Equal(t, PartialMatch, result.Verdict)
	require.NotNil(t, result.Record)
	assert.Same(t, &store.All()[1], result.Record)
	assert.Len(t, result.Mismatches, 1)
}

func TestMatchEmptyStore(t *testing.T) {
	result := Match(janeExtracted(), NewStore(nil))

	assert.Equal(t, NoMatch, result.Verdict)
	assert.Nil(t, result.Record)
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, "no records available", result.Mismatches["record"].Reference)
}

func TestMatchMismatchesKeepOriginalValues(t *testing.T) {
	record := janeRecord()
	record.FullName = "Janet Doe"
	store := NewStore([]models.LicenseRecord{record})

	result := Match(janeExtracted(), store)

	assert.Equal(t, PartialMatch, result.Verdict)
	require.Contains(t, result.Mismatches, "full_name")
	// Original strings, not the normalized forms.
	assert.Equal(t, "Jane Doe", result.Mismatches["full_name"].Extracted)
	assert.Equal(t, "Janet Doe", result.Mismatches["full_name"].Reference)
}

func TestMatchSynonymResolutionOrder(t *testing.T) {
	extracted := janeExtracted()
	delete(extracted, "name")
	extracted["full_name"] = "Jane Doe"
	extracted["field_of_practice"] = "RN"
	delete(extracted, "to_practice_as")

	store := NewStore([]models.LicenseRecord{janeRecord()})
	result := Match(extracted, store)
	assert.Equal(t, ExactMatch, result.Verdict)
}

func TestMatchUnparseableDatesCompareEqual(t *testing.T) {
	// Two garbled dates both normalize to "" and therefore agree. Known
	// tolerance gap, asserted here so a behavior change is deliberate.
	record := janeRecord()
	record.DateOfBirth = "garbled##"
	extracted := janeExtracted()
	extracted["date_of_birth"] = "??/??/????"

	result := Match(extracted, NewStore([]models.LicenseRecord{record}))
	assert.Equal(t, ExactMatch, result.Verdict)
}

func TestMatchMissingExtractedFieldDegradesToMismatch(t *testing.T) {
	extracted := janeExtracted()
	delete(extracted, "license_number")

	result := Match(extracted, NewStore([]models.LicenseRecord{janeRecord()}))

	assert.Equal(t, PartialMatch, result.Verdict)
	require.Contains(t, result.Mismatches, "license_number")
	assert.Equal(t, "", result.Mismatches["license_number"].Extracted)
	assert.Equal(t, "RN-123", result.Mismatches["license_number"].Reference)
}
