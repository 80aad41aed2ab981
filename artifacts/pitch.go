package artifacts

import (
	"strconv"
	"strings"

	"github.com/callvuforge/api/intake"
)

// PitchPoints emits the problem/solution/benefits narrative, with phrasing
// selected by current-process type, volume tier, and integration count, and a
// closing templated talk track.
func PitchPoints(req *intake.Request) string {
	var points []string

	points = append(points, "## Why This Microapp Matters\n")

	switch req.CurrentProcess {
	case "Manual":
		points = append(points, "⏱️ **Eliminates manual process** - No more emails, phone calls, or paper forms")
	case "Spreadsheets":
		points = append(points, "⏱️ **Replaces spreadsheet chaos** - Structured data capture with validation")
	case "Bad Software":
		points = append(points, "⏱️ **Better user experience** - Modern, mobile-friendly interface")
	}

	switch req.EstimatedVolume {
	case "10000+":
		points = append(points, "📈 **High-volume ready** - Handles 10,000+ submissions/month efficiently")
	case "2000-10000":
		points = append(points, "📈 **Scales with demand** - Built for thousands of monthly submissions")
	}

	if len(req.SubmitActions) > 1 {
		points = append(points, "🔗 **Connected ecosystem** - Automatically syncs to "+strings.Join(req.SubmitActions, ", "))
	}

	if len(req.ComplianceRequirements) > 0 {
		points = append(points, "✅ **Compliance-ready** - Built with "+strings.Join(req.ComplianceRequirements, ", ")+" requirements in mind")
	}

	if req.CanSaveProgress == "yes" {
		points = append(points, "💾 **User-friendly** - Save and return later capability")
	}

	if req.NeedsMultiLanguage == "yes" {
		languages := "multiple"
		if len(req.Languages) > 0 {
			languages = strconv.Itoa(len(req.Languages))
		}
		points = append(points, "🌐 **Global reach** - Supports "+languages+" languages")
	}

	points = append(points, "\n## Talk Track")
	points = append(points, talkTrack(req)...)

	return strings.Join(points, "\n")
}

// talkTrack builds the canned closing pitch by substituting canonical fields
// into a fixed sentence skeleton.
func talkTrack(req *intake.Request) []string {
	process := "the current system"
	if req.CurrentProcess == "Manual" {
		process = "manual processes"
	}
	outcome := "captures everything needed"
	if req.HasSubmitAction("notification") {
		outcome = "automatically notifies stakeholders"
	}
	destination := "stores data securely"
	if req.HasSubmitAction("crm") {
		destination = "syncs directly to your CRM"
	}

	return []string{
		`"This microapp transforms how ` + req.OwningDepartment + ` handles ` + strings.ToLower(req.MicroappName) + `. `,
		"Instead of " + process + ", ",
		"users get a streamlined experience that " + outcome + " ",
		"and " + destination + `."`,
	}
}
