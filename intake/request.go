// Package intake normalizes raw wizard submissions into the canonical
// request shape the rest of the pipeline depends on.
package intake

import (
	"fmt"
	"strconv"
	"strings"
)

// Request is the canonical intake questionnaire. Every field is optional;
// absent answers stay zero-valued and downstream components treat absence as
// meaningful (warnings, defaults), never as an error.
type Request struct {
	UserName            string `json:"userName,omitempty"`
	UserEmail           string `json:"userEmail,omitempty"`
	MicroappName        string `json:"microappName,omitempty"`
	MicroappDescription string `json:"microappDescription,omitempty"`
	UserType            string `json:"userType,omitempty"`
	OwningDepartment    string `json:"owningDepartment,omitempty"`
	TriggerEvent        string `json:"triggerEvent,omitempty"`
	CurrentProcess      string `json:"currentProcess,omitempty"`

	NeedsContactInfo bool   `json:"needsContactInfo,omitempty"`
	NeedsIdentifiers bool   `json:"needsIdentifiers,omitempty"`
	NeedsDates       bool   `json:"needsDates,omitempty"`
	NeedsChoices     bool   `json:"needsChoices,omitempty"`
	NeedsRichInput   bool   `json:"needsRichInput,omitempty"`
	NeedsFinancial   bool   `json:"needsFinancial,omitempty"`
	CustomDropdowns  string `json:"customDropdowns,omitempty"`
	OtherFields      string `json:"otherFields,omitempty"`

	HasBranching    string `json:"hasBranching,omitempty"`
	BranchingLogic  string `json:"branchingLogic,omitempty"`
	NeedsApproval   string `json:"needsApproval,omitempty"`
	ApprovalDetails string `json:"approvalDetails,omitempty"`
	CanSaveProgress string `json:"canSaveProgress,omitempty"`

	SubmitActions     []string `json:"submitActions,omitempty"`
	EmailRecipients   string   `json:"emailRecipients,omitempty"`
	SlackChannel      string   `json:"slackChannel,omitempty"`
	CRMSystem         string   `json:"crmSystem,omitempty"`
	TicketSystem      string   `json:"ticketSystem,omitempty"`
	OtherIntegrations string   `json:"otherIntegrations,omitempty"`

	NeedsDataLookup string `json:"needsDataLookup,omitempty"`
	LookupDetails   string `json:"lookupDetails,omitempty"`

	NeedsMultiLanguage     string   `json:"needsMultiLanguage,omitempty"`
	Languages              []string `json:"languages,omitempty"`
	ComplianceRequirements []string `json:"complianceRequirements,omitempty"`
	BrandingNotes          string   `json:"brandingNotes,omitempty"`
	EstimatedVolume        string   `json:"estimatedVolume,omitempty"`
	AdditionalNotes        string   `json:"additionalNotes,omitempty"`
}

// HasSubmitAction reports whether the request asked for the given post-submit
// action (case-insensitive).
func (r *Request) HasSubmitAction(action string) bool {
	for _, a := range r.SubmitActions {
		if strings.EqualFold(a, action) {
			return true
		}
	}
	return false
}

// aliases maps caller-supplied key spellings onto canonical field names. The
// wizard frontend has shipped several key conventions over time; normalization
// is the single place that knows about all of them.
var aliases = map[string]string{
	"username":       "userName",
	"user_name":      "userName",
	"requestername":  "userName",
	"requester_name": "userName",

	"useremail":       "userEmail",
	"user_email":      "userEmail",
	"requesteremail":  "userEmail",
	"requester_email": "userEmail",
	"email":           "userEmail",

	"microappname":  "microappName",
	"microapp_name": "microappName",
	"appname":       "microappName",
	"app_name":      "microappName",
	"formname":      "microappName",

	"microappdescription":  "microappDescription",
	"microapp_description": "microappDescription",
	"description":          "microappDescription",

	"usertype":  "userType",
	"user_type": "userType",
	"audience":  "userType",

	"owningdepartment":  "owningDepartment",
	"owning_department": "owningDepartment",
	"department":        "owningDepartment",

	"triggerevent":  "triggerEvent",
	"trigger_event": "triggerEvent",
	"trigger":       "triggerEvent",

	"currentprocess":  "currentProcess",
	"current_process": "currentProcess",

	"needscontactinfo":   "needsContactInfo",
	"needs_contact_info": "needsContactInfo",
	"needsidentifiers":   "needsIdentifiers",
	"needs_identifiers":  "needsIdentifiers",
	"needsdates":         "needsDates",
	"needs_dates":        "needsDates",
	"needschoices":       "needsChoices",
	"needs_choices":      "needsChoices",
	"needsrichinput":     "needsRichInput",
	"needs_rich_input":   "needsRichInput",
	"needsfinancial":     "needsFinancial",
	"needs_financial":    "needsFinancial",

	"customdropdowns":  "customDropdowns",
	"custom_dropdowns": "customDropdowns",
	"otherfields":      "otherFields",
	"other_fields":     "otherFields",

	"hasbranching":      "hasBranching",
	"has_branching":     "hasBranching",
	"branchinglogic":    "branchingLogic",
	"branching_logic":   "branchingLogic",
	"needsapproval":     "needsApproval",
	"needs_approval":    "needsApproval",
	"approvaldetails":   "approvalDetails",
	"approval_details":  "approvalDetails",
	"cansaveprogress":   "canSaveProgress",
	"can_save_progress": "canSaveProgress",
	"saveprogress":      "canSaveProgress",

	"submitactions":       "submitActions",
	"submit_actions":      "submitActions",
	"postsubmitactions":   "submitActions",
	"post_submit_actions": "submitActions",

	"emailrecipients":    "emailRecipients",
	"email_recipients":   "emailRecipients",
	"slackchannel":       "slackChannel",
	"slack_channel":      "slackChannel",
	"crmsystem":          "crmSystem",
	"crm_system":         "crmSystem",
	"ticketsystem":       "ticketSystem",
	"ticket_system":      "ticketSystem",
	"otherintegrations":  "otherIntegrations",
	"other_integrations": "otherIntegrations",

	"needsdatalookup":   "needsDataLookup",
	"needs_data_lookup": "needsDataLookup",
	"lookupdetails":     "lookupDetails",
	"lookup_details":    "lookupDetails",

	"needsmultilanguage":      "needsMultiLanguage",
	"needs_multi_language":    "needsMultiLanguage",
	"multilanguage":           "needsMultiLanguage",
	"languages":               "languages",
	"compliancerequirements":  "complianceRequirements",
	"compliance_requirements": "complianceRequirements",
	"compliance":              "complianceRequirements",
	"brandingnotes":           "brandingNotes",
	"branding_notes":          "brandingNotes",
	"estimatedvolume":         "estimatedVolume",
	"estimated_volume":        "estimatedVolume",
	"volume":                  "estimatedVolume",
	"additionalnotes":         "additionalNotes",
	"additional_notes":        "additionalNotes",
	"notes":                   "additionalNotes",
}

// Normalize maps a raw key/value submission onto the canonical Request.
// Unknown keys are ignored, missing keys stay zero-valued, and values are
// lightly coerced (comma-separated strings become lists where a list is
// expected). Normalize never fails.
func Normalize(raw map[string]any) Request {
	var req Request
	for key, value := range raw {
		canonical := canonicalKey(key)
		switch canonical {
		case "userName":
			req.UserName = asString(value)
		case "userEmail":
			req.UserEmail = asString(value)
		case "microappName":
			req.MicroappName = asString(value)
		case "microappDescription":
			req.MicroappDescription = asString(value)
		case "userType":
			req.UserType = asString(value)
		case "owningDepartment":
			req.OwningDepartment = asString(value)
		case "triggerEvent":
			req.TriggerEvent = asString(value)
		case "currentProcess":
			req.CurrentProcess = asString(value)
		case "needsContactInfo":
			req.NeedsContactInfo = asBool(value)
		case "needsIdentifiers":
			req.NeedsIdentifiers = asBool(value)
		case "needsDates":
			req.NeedsDates = asBool(value)
		case "needsChoices":
			req.NeedsChoices = asBool(value)
		case "needsRichInput":
			req.NeedsRichInput = asBool(value)
		case "needsFinancial":
			req.NeedsFinancial = asBool(value)
		case "customDropdowns":
			req.CustomDropdowns = asString(value)
		case "otherFields":
			req.OtherFields = asString(value)
		case "hasBranching":
			req.HasBranching = asString(value)
		case "branchingLogic":
			req.BranchingLogic = asString(value)
		case "needsApproval":
			req.NeedsApproval = asString(value)
		case "approvalDetails":
			req.ApprovalDetails = asString(value)
		case "canSaveProgress":
			req.CanSaveProgress = asString(value)
		case "submitActions":
			req.SubmitActions = asStringList(value)
		case "emailRecipients":
			req.EmailRecipients = asString(value)
		case "slackChannel":
			req.SlackChannel = asString(value)
		case "crmSystem":
			req.CRMSystem = asString(value)
		case "ticketSystem":
			req.TicketSystem = asString(value)
		case "otherIntegrations":
			req.OtherIntegrations = asString(value)
		case "needsDataLookup":
			req.NeedsDataLookup = asString(value)
		case "lookupDetails":
			req.LookupDetails = asString(value)
		case "needsMultiLanguage":
			req.NeedsMultiLanguage = asString(value)
		case "languages":
			req.Languages = asStringList(value)
		case "complianceRequirements":
			req.ComplianceRequirements = asStringList(value)
		case "brandingNotes":
			req.BrandingNotes = asString(value)
		case "estimatedVolume":
			req.EstimatedVolume = asString(value)
		case "additionalNotes":
			req.AdditionalNotes = asString(value)
		}
	}
	return req
}

func canonicalKey(key string) string {
	folded := strings.ToLower(strings.TrimSpace(key))
	if canonical, ok := aliases[folded]; ok {
		return canonical
	}
	return ""
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "yes" || s == "true" || s == "1" || s == "on"
	case float64:
		return v != 0
	default:
		return false
	}
}

func asStringList(value any) []string {
	var items []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if s := asString(item); s != "" {
				items = append(items, s)
			}
		}
	case []string:
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				items = append(items, s)
			}
		}
	case string:
		for _, part := range strings.Split(v, ",") {
			if s := strings.TrimSpace(part); s != "" {
				items = append(items, s)
			}
		}
	}
	return items
}
