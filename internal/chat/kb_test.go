package chat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleKB() []KBEntry {
	return []KBEntry{
		{
			IssueCode:          "LICENSE_DB_MISMATCH",
			Title:              "License record mismatch",
			Description:        "The license details do not match the official registry.",
			PossibleCauses:     []string{"Typo on the scanned document", "Outdated registry entry"},
			RecommendedActions: []string{"Re-upload a clearer scan", "Contact the licensing board"},
			Critical:           true,
		},
		{
			IssueCode:          "FIELD_UNCLEAR",
			Title:              "Unreadable field",
			Description:        "A required field could not be read from the scan.",
			PossibleCauses:     []string{"Low scan quality"},
			RecommendedActions: []string{"Upload a higher-resolution scan"},
		},
	}
}

func TestLoadKB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"issue_code": "FIELD_UNCLEAR", "title": "Unreadable field", "description": "d", "possible_causes": ["c"], "recommended_actions": ["a"], "critical": false}
	]`), 0o644))

	kb, err := LoadKB(path)
	require.NoError(t, err)
	require.Len(t, kb, 1)
	assert.Equal(t, "FIELD_UNCLEAR", kb[0].IssueCode)
}

func TestLoadKBMissing(t *testing.T) {
	_, err := LoadKB(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestEntriesForIssuesPreservesRequestOrder(t *testing.T) {
	kb := sampleKB()
	entries := EntriesForIssues(kb, []string{"FIELD_UNCLEAR", "LICENSE_DB_MISMATCH"})
	require.Len(t, entries, 2)
	assert.Equal(t, "FIELD_UNCLEAR", entries[0].IssueCode)
	assert.Equal(t, "LICENSE_DB_MISMATCH", entries[1].IssueCode)

	assert.Empty(t, EntriesForIssues(kb, []string{"UNKNOWN_CODE"}))
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleKB())
	assert.Contains(t, prompt, "Issue: License record mismatch")
	assert.Contains(t, prompt, "- Typo on the scanned document")
	assert.Contains(t, prompt, "escalated to HR")

	assert.Equal(t, "No known issues found for the provided validation failures.", BuildPrompt(nil))
}

func TestTemplateMessage(t *testing.T) {
	msg := TemplateMessage(sampleKB())
	assert.Contains(t, msg, "**License record mismatch**")
	assert.Contains(t, msg, "escalated to our HR team immediately")
	assert.Contains(t, msg, "Best regards")

	assert.Contains(t, TemplateMessage(nil), "Good news!")
}
