package chat

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
)

// KBEntry is one knowledge-base article describing a known validation issue
// and how a candidate can resolve it.
type KBEntry struct {
	IssueCode          string   `json:"issue_code"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	PossibleCauses     []string `json:"possible_causes"`
	RecommendedActions []string `json:"recommended_actions"`
	Critical           bool     `json:"critical"`
}

// LoadKB reads the validation knowledge base from a JSON file.
func LoadKB(path string) ([]KBEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read knowledge base %s", path)
	}
	var kb []KBEntry
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, eris.Wrapf(err, "decode knowledge base %s", path)
	}
	return kb, nil
}

// EntriesForIssues returns the KB entries matching the detected issue codes,
// in the order the codes were reported.
func EntriesForIssues(kb []KBEntry, issueCodes []string) []KBEntry {
	var matched []KBEntry
	for _, code := range issueCodes {
		for _, entry := range kb {
			if entry.IssueCode == code {
				matched = append(matched, entry)
			}
		}
	}
	return matched
}
