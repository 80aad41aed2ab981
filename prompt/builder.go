// Package prompt renders a normalized intake request into the generation
// prompt sent to the model, alongside the static CVUF reference grammar.
package prompt

import (
	"fmt"
	"strings"

	"github.com/callvuforge/api/intake"
	"github.com/callvuforge/api/templates"
)

// HighConfidenceScore is the template-match score at or above which the
// suggested-archetype hint is included. Weaker matches are omitted entirely so
// they never bias generation.
const HighConfidenceScore = 70

// Build renders every canonical intake field into a labeled section. Absent
// answers render as "Not specified"/"None" so the model never sees an
// ambiguous gap. The output is deterministic for a given request and match.
func Build(req *intake.Request, match templates.Match) string {
	var b strings.Builder

	b.WriteString("Generate a CallVu CVUF microapp file based on these requirements:\n\n")

	b.WriteString("## Microapp Details\n")
	fmt.Fprintf(&b, "- Name: %s\n", orPlaceholder(req.MicroappName, "Not specified"))
	fmt.Fprintf(&b, "- Description: %s\n", orPlaceholder(req.MicroappDescription, "Not specified"))
	fmt.Fprintf(&b, "- User Type: %s\n", orPlaceholder(req.UserType, "Not specified"))
	fmt.Fprintf(&b, "- Department: %s\n", orPlaceholder(req.OwningDepartment, "Not specified"))
	fmt.Fprintf(&b, "- Trigger: %s\n", orPlaceholder(req.TriggerEvent, "Not specified"))
	fmt.Fprintf(&b, "- Current Process: %s\n", orPlaceholder(req.CurrentProcess, "Not specified"))

	b.WriteString("\n## Data Collection Requirements\n")
	fmt.Fprintf(&b, "- Contact Info: %s\n", yesNo(req.NeedsContactInfo))
	fmt.Fprintf(&b, "- Identifiers/Account Numbers: %s\n", yesNo(req.NeedsIdentifiers))
	fmt.Fprintf(&b, "- Dates/Scheduling: %s\n", yesNo(req.NeedsDates))
	fmt.Fprintf(&b, "- Selection Choices: %s\n", yesNo(req.NeedsChoices))
	fmt.Fprintf(&b, "- Rich Inputs (files/signatures): %s\n", yesNo(req.NeedsRichInput))
	fmt.Fprintf(&b, "- Financial Data: %s\n", yesNo(req.NeedsFinancial))
	fmt.Fprintf(&b, "- Custom Dropdowns: %s\n", orPlaceholder(req.CustomDropdowns, "None"))
	fmt.Fprintf(&b, "- Other Fields: %s\n", orPlaceholder(req.OtherFields, "None"))

	b.WriteString("\n## Workflow\n")
	fmt.Fprintf(&b, "- Conditional Branching: %s%s\n", orPlaceholder(req.HasBranching, "Not specified"), detail(req.BranchingLogic))
	fmt.Fprintf(&b, "- Approval Required: %s%s\n", orPlaceholder(req.NeedsApproval, "Not specified"), detail(req.ApprovalDetails))
	fmt.Fprintf(&b, "- Save Progress: %s\n", orPlaceholder(req.CanSaveProgress, "Not specified"))

	b.WriteString("\n## Post-Submit Actions\n")
	actions := "Store only"
	if len(req.SubmitActions) > 0 {
		actions = strings.Join(req.SubmitActions, ", ")
	}
	fmt.Fprintf(&b, "- Actions: %s\n", actions)
	fmt.Fprintf(&b, "- Email Recipients: %s\n", orPlaceholder(req.EmailRecipients, "Not specified"))
	fmt.Fprintf(&b, "- Slack Channel: %s\n", orPlaceholder(req.SlackChannel, "Not specified"))
	fmt.Fprintf(&b, "- CRM System: %s\n", orPlaceholder(req.CRMSystem, "Not specified"))
	fmt.Fprintf(&b, "- Ticket System: %s\n", orPlaceholder(req.TicketSystem, "Not specified"))
	fmt.Fprintf(&b, "- Other Integrations: %s\n", orPlaceholder(req.OtherIntegrations, "None"))

	b.WriteString("\n## Data Lookup\n")
	fmt.Fprintf(&b, "- Needs Lookup: %s\n", orPlaceholder(req.NeedsDataLookup, "Not specified"))
	fmt.Fprintf(&b, "- Details: %s\n", orPlaceholder(req.LookupDetails, "Not specified"))

	b.WriteString("\n## Requirements\n")
	languages := ""
	if len(req.Languages) > 0 {
		languages = " " + strings.Join(req.Languages, ", ")
	}
	fmt.Fprintf(&b, "- Multi-language: %s%s\n", orPlaceholder(req.NeedsMultiLanguage, "Not specified"), languages)
	compliance := "None"
	if len(req.ComplianceRequirements) > 0 {
		compliance = strings.Join(req.ComplianceRequirements, ", ")
	}
	fmt.Fprintf(&b, "- Compliance: %s\n", compliance)
	fmt.Fprintf(&b, "- Branding: %s\n", orPlaceholder(req.BrandingNotes, "Use default CallVu theme"))
	fmt.Fprintf(&b, "- Volume: %s\n", orPlaceholder(req.EstimatedVolume, "Not specified"))
	fmt.Fprintf(&b, "- Additional Notes: %s\n", orPlaceholder(req.AdditionalNotes, "None"))

	if match.Score >= HighConfidenceScore && match.TemplateID != "" {
		fmt.Fprintf(&b, "\nSuggested base template: %s (%d%% match)\n", match.TemplateID, match.Score)
	}

	b.WriteString(`
Generate a complete CVUF JSON file with:
1. Welcome/intro screen
2. All necessary data collection screens (group logically)
3. Review/confirmation screen if complex
4. Thank you/completion screen
5. Appropriate conditional logic rules
6. All required integrationIDs for API mapping

Output ONLY the minified JSON, nothing else.`)

	return b.String()
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func yesNo(flag bool) string {
	if flag {
		return "Yes"
	}
	return "No"
}

func detail(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return " - " + text
}
