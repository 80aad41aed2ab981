// Package artifacts derives the human-readable companion outputs (dependency
// checklist, setup guide, pitch points, build-time estimate) from a normalized
// intake request. Every generator is a pure function: no generative call, no
// I/O, no mutation of its inputs.
package artifacts

import (
	"strings"

	"github.com/callvuforge/api/intake"
)

// Dependencies emits the ordered checklist of external prerequisites driven by
// which integrations and features the request asked for.
func Dependencies(req *intake.Request) string {
	deps := []string{"✅ CallVu Studio account with import permissions"}

	if req.HasSubmitAction("notification") {
		deps = append(deps, "📧 Email service configuration (SMTP or SendGrid)")
	}
	if req.HasSubmitAction("slack") {
		deps = append(deps, "💬 Slack webhook URL for notifications")
	}
	if req.HasSubmitAction("crm") {
		deps = append(deps, "🔗 "+orDefault(req.CRMSystem, "CRM")+" API credentials and field mapping")
	}
	if req.HasSubmitAction("ticket") {
		deps = append(deps, "🎫 "+orDefault(req.TicketSystem, "Ticketing system")+" API integration")
	}
	if req.NeedsDataLookup == "yes" {
		deps = append(deps, "🔍 Data lookup API endpoint configuration")
	}
	if req.NeedsMultiLanguage == "yes" {
		languages := "selected languages"
		if len(req.Languages) > 0 {
			languages = strings.Join(req.Languages, ", ")
		}
		deps = append(deps, "🌐 Translation files for: "+languages)
	}
	if len(req.ComplianceRequirements) > 0 {
		deps = append(deps, "📋 Compliance review for: "+strings.Join(req.ComplianceRequirements, ", "))
	}
	if req.NeedsApproval == "yes" {
		deps = append(deps, "👥 Approval workflow configuration in CallVu")
	}

	return strings.Join(deps, "\n")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
