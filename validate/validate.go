// Package validate inspects a normalized intake request for logically
// inconsistent or incomplete answers. Everything it reports is advisory: a
// warning is attached to telemetry and response metadata but never blocks
// generation.
package validate

import "github.com/callvuforge/api/intake"

// Warning flags one inconsistent or incomplete intake answer.
type Warning struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// SeverityWarning is the only severity the engine currently emits. Soft
// guidance, not gatekeeping.
const SeverityWarning = "warning"

type check struct {
	field   string
	message string
	failed  func(*intake.Request) bool
}

// checks run in order; each failing predicate appends exactly one warning and
// no predicate short-circuits another.
var checks = []check{
	{
		field:   "lookupDetails",
		message: "Data lookup requested but no details provided",
		failed: func(r *intake.Request) bool {
			return r.NeedsDataLookup == "yes" && r.LookupDetails == ""
		},
	},
	{
		field:   "languages",
		message: "Multi-language requested but no languages selected",
		failed: func(r *intake.Request) bool {
			return r.NeedsMultiLanguage == "yes" && len(r.Languages) == 0
		},
	},
	{
		field:   "crmSystem",
		message: "CRM integration requested but no CRM system specified",
		failed: func(r *intake.Request) bool {
			return r.HasSubmitAction("crm") && r.CRMSystem == ""
		},
	},
	{
		field:   "emailRecipients",
		message: "Email notifications requested but no recipients specified",
		failed: func(r *intake.Request) bool {
			return r.HasSubmitAction("notification") && r.EmailRecipients == ""
		},
	},
	{
		field:   "approvalDetails",
		message: "Approval workflow requested but no details provided",
		failed: func(r *intake.Request) bool {
			return r.NeedsApproval == "yes" && r.ApprovalDetails == ""
		},
	},
	{
		field:   "branchingLogic",
		message: "Conditional branching requested but no logic described",
		failed: func(r *intake.Request) bool {
			return r.HasBranching == "yes" && r.BranchingLogic == ""
		},
	},
	{
		field:   "estimatedVolume",
		message: "High volume with email notifications - consider batching strategy",
		failed: func(r *intake.Request) bool {
			return r.EstimatedVolume == "10000+" && r.HasSubmitAction("notification")
		},
	},
}

// Check runs every predicate against the request and returns the warnings in
// predicate order. An empty slice means the intake answers are internally
// consistent.
func Check(req *intake.Request) []Warning {
	warnings := []Warning{}
	for _, c := range checks {
		if c.failed(req) {
			warnings = append(warnings, Warning{
				Field:    c.field,
				Message:  c.message,
				Severity: SeverityWarning,
			})
		}
	}
	return warnings
}
