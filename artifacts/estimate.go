package artifacts

import "github.com/callvuforge/api/intake"

const baseHours = 2

// EstimateBuildTime scores the request's complexity factors into an hour total
// and buckets it into one of four fixed display tiers. Adding any single
// factor never lowers the returned tier.
func EstimateBuildTime(req *intake.Request) string {
	hours := baseHours

	if req.HasBranching == "yes" {
		hours += 2
	}
	if req.NeedsApproval == "yes" {
		hours += 1
	}
	if len(req.SubmitActions) > 2 {
		hours += 2
	}
	if req.NeedsDataLookup == "yes" {
		hours += 2
	}
	if req.NeedsMultiLanguage == "yes" {
		if len(req.Languages) > 0 {
			hours += len(req.Languages)
		} else {
			hours += 2
		}
	}
	if len(req.ComplianceRequirements) > 0 {
		hours += 1
	}

	switch {
	case hours <= 3:
		return "2-3 hours (Simple)"
	case hours <= 6:
		return "4-6 hours (Moderate)"
	case hours <= 10:
		return "1-2 days (Complex)"
	default:
		return "2-3 days (Enterprise)"
	}
}
