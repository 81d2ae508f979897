package chat

import (
	"fmt"
	"strings"
)

// BuildPrompt constructs the assistant prompt from the matched KB entries.
func BuildPrompt(entries []KBEntry) string {
	if len(entries) == 0 {
		return "No known issues found for the provided validation failures."
	}

	var parts []string
	parts = append(parts,
		"You are an assistant helping a candidate understand validation issues with their documents. "+
			"Please provide a clear, empathetic explanation and suggested actions based on the following issues:\n")

	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("Issue: %s\nDescription: %s\n", entry.Title, entry.Description))
		parts = append(parts, "Possible causes:")
		for _, cause := range entry.PossibleCauses {
			parts = append(parts, "- "+cause)
		}
		parts = append(parts, "\nRecommended actions:")
		for _, action := range entry.RecommendedActions {
			parts = append(parts, "- "+action)
		}
		parts = append(parts, "")
	}

	parts = append(parts,
		"If any issue is marked critical, please advise the candidate that this will be escalated to HR.",
		"Answer in a friendly, clear, and helpful tone.")

	return strings.Join(parts, "\n")
}

// TemplateMessage renders a static, human-friendly summary of the issues.
// Used as a fallback when the model is disabled or unreachable.
func TemplateMessage(entries []KBEntry) string {
	if len(entries) == 0 {
		return "Good news! No validation issues were found with your documents."
	}

	var b strings.Builder
	b.WriteString("I hope you're doing well. I'm reaching out to help you with some issues we've encountered during the onboarding process. Don't worry, it's an easy fix!\n\n")
	b.WriteString("We've noticed a couple of discrepancies with the documents you've submitted, and I'd like to walk you through them.\n\n")

	for _, entry := range entries {
		fmt.Fprintf(&b, "**%s**\n%s\n", entry.Title, entry.Description)
		b.WriteString("Possible causes:\n")
		for _, cause := range entry.PossibleCauses {
			fmt.Fprintf(&b, "- %s\n", cause)
		}
		b.WriteString("Recommended actions:\n")
		for _, action := range entry.RecommendedActions {
			fmt.Fprintf(&b, "- %s\n", action)
		}
		if entry.Critical {
			b.WriteString("\nThis issue is marked as critical and will be escalated to our HR team immediately.\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("If you have any questions or concerns, please don't hesitate to reach out. We're here to assist you every step of the way.\n\nBest regards,\nYour HR Assistant")
	return b.String()
}
