package reconcile

import "onboardly/internal/models"

// Verdict is the three-way outcome of a match attempt.
type Verdict string

const (
	ExactMatch   Verdict = "EXACT_MATCH"
	PartialMatch Verdict = "PARTIAL_MATCH"
	NoMatch      Verdict = "NO_MATCH"
)

// Mismatch carries the original, non-normalized values of a disagreeing
// field so the downstream report stays human-readable.
type Mismatch struct {
	Extracted string `json:"extracted"`
	Reference string `json:"reference"`
}

// MatchResult is the output of one verification attempt. Record is nil only
// for NoMatch; Mismatches is empty exactly when the verdict is ExactMatch.
type MatchResult struct {
	Verdict    Verdict               `json:"verdict"`
	Record     *models.LicenseRecord `json:"record,omitempty"`
	Mismatches map[string]Mismatch   `json:"mismatches"`
}

// sentinelField keys the single mismatch entry reported when the store holds
// no records at all.
const sentinelField = "record"

// field describes one canonical license field: the extraction-step aliases
// accepted for it (tried in order, first non-empty wins) and how its values
// normalize for comparison.
type field struct {
	name    string
	aliases []string
	date    bool
	value   func(models.LicenseRecord) string
}

var licenseFields = []field{
	{"full_name", []string{"name", "full_name"}, false, func(r models.LicenseRecord) string { return r.FullName }},
	{"date_of_birth", []string{"date_of_birth", "dob"}, true, func(r models.LicenseRecord) string { return r.DateOfBirth }},
	{"license_number", []string{"license_number", "licence_number"}, false, func(r models.LicenseRecord) string { return r.LicenseNumber }},
	{"gender", []string{"gender", "sex"}, false, func(r models.LicenseRecord) string { return r.Gender }},
	{"valid_until", []string{"valid_until", "expiry_date"}, true, func(r models.LicenseRecord) string { return r.ValidUntil }},
	{"field_of_practice", []string{"to_practice_as", "field_of_practice"}, false, func(r models.LicenseRecord) string { return r.FieldOfPractice }},
}

func (f field) resolve(extracted map[string]string) string {
	for _, alias := range f.aliases {
		if v := extracted[alias]; v != "" {
			return v
		}
	}
	return ""
}

func (f field) normalize(raw string) string {
	if f.date {
		return NormalizeDate(raw)
	}
	return NormalizeText(raw)
}

// Match scores every record of the store against the extracted field map and
// selects the best candidate.
//
// The first record with zero mismatched fields wins outright, even if a later
// record would also match exactly. Otherwise the record with the fewest
// mismatches wins, with ties kept by the earlier store index. Messy field
// values never fail the attempt: unparseable dates normalize to "" and two
// empty values compare equal.
func Match(extracted map[string]string, store *Store) MatchResult {
	if store.Len() == 0 {
		return MatchResult{
			Verdict: NoMatch,
			Mismatches: map[string]Mismatch{
				sentinelField: {Reference: "no records available"},
			},
		}
	}

	type resolved struct {
		raw  string
		norm string
	}
	values := make(map[string]resolved, len(licenseFields))
	for _, f := range licenseFields {
		raw := f.resolve(extracted)
		values[f.name] = resolved{raw: raw, norm: f.normalize(raw)}
	}

	records := store.All()
	bestIdx := -1
	var bestMismatches map[string]Mismatch
	for i := range records {
		mismatches := make(map[string]Mismatch)
		for _, f := range licenseFields {
			refRaw := f.value(records[i])
			if values[f.name].norm != f.normalize(refRaw) {
				mismatches[f.name] = Mismatch{Extracted: values[f.name].raw, Reference: refRaw}
			}
		}
		if len(mismatches) == 0 {
			return MatchResult{Verdict: ExactMatch, Record: &records[i], Mismatches: map[string]Mismatch{}}
		}
		// Strict improvement only, so ties keep the earlier record.
		if bestIdx == -1 || len(mismatches) < len(bestMismatches) {
			bestIdx = i
			bestMismatches = mismatches
		}
	}
	return MatchResult{Verdict: PartialMatch, Record: &records[bestIdx], Mismatches: bestMismatches}
}
