package intake

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeCanonicalKeys(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"microappName":        "PTO Request",
		"microappDescription": "time off vacation leave",
		"owningDepartment":    "HR",
		"userEmail":           "pat@example.com",
		"needsApproval":       "yes",
		"approvalDetails":     "manager",
		"needsContactInfo":    true,
		"submitActions":       []any{"notification", "crm"},
		"estimatedVolume":     "2000-10000",
	}

	got := Normalize(raw)
	want := Request{
		MicroappName:        "PTO Request",
		MicroappDescription: "time off vacation leave",
		OwningDepartment:    "HR",
		UserEmail:           "pat@example.com",
		NeedsApproval:       "yes",
		ApprovalDetails:     "manager",
		NeedsContactInfo:    true,
		SubmitActions:       []string{"notification", "crm"},
		EstimatedVolume:     "2000-10000",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
		want Request
	}{
		{
			name: "snake case keys",
			raw: map[string]any{
				"microapp_name":     "Expense Report",
				"owning_department": "Finance",
				"needs_data_lookup": "yes",
				"lookup_details":    "employee id lookup",
			},
			want: Request{
				MicroappName:     "Expense Report",
				OwningDepartment: "Finance",
				NeedsDataLookup:  "yes",
				LookupDetails:    "employee id lookup",
			},
		},
		{
			name: "short alternates",
			raw: map[string]any{
				"name":        "Contact Form",
				"description": "general inquiry",
				"department":  "Marketing",
				"email":       "sam@example.com",
			},
			want: Request{
				MicroappName:        "Contact Form",
				MicroappDescription: "general inquiry",
				OwningDepartment:    "Marketing",
				UserEmail:           "sam@example.com",
			},
		},
		{
			name: "unknown keys ignored",
			raw: map[string]any{
				"microappName": "Survey",
				"_csrf":        "token",
				"submit":       "Send",
			},
			want: Request{MicroappName: "Survey"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeCoercions(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"languages":              "English, Spanish , French",
		"complianceRequirements": "HIPAA",
		"submitActions":          "notification,crm",
		"needsDates":             "yes",
		"needsFinancial":         float64(1),
		"needsRichInput":         "no",
	}

	got := Normalize(raw)
	if diff := cmp.Diff([]string{"English", "Spanish", "French"}, got.Languages); diff != "" {
		t.Errorf("Languages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"HIPAA"}, got.ComplianceRequirements); diff != "" {
		t.Errorf("ComplianceRequirements mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"notification", "crm"}, got.SubmitActions); diff != "" {
		t.Errorf("SubmitActions mismatch (-want +got):\n%s", diff)
	}
	if !got.NeedsDates || !got.NeedsFinancial || got.NeedsRichInput {
		t.Errorf("flag coercion failed: dates=%v financial=%v rich=%v", got.NeedsDates, got.NeedsFinancial, got.NeedsRichInput)
	}
}

func TestNormalizeEmptyPayload(t *testing.T) {
	t.Parallel()

	got := Normalize(map[string]any{})
	if diff := cmp.Diff(Request{}, got); diff != "" {
		t.Fatalf("Normalize(empty) should be zero valued (-want +got):\n%s", diff)
	}
	got = Normalize(nil)
	if diff := cmp.Diff(Request{}, got); diff != "" {
		t.Fatalf("Normalize(nil) should be zero valued (-want +got):\n%s", diff)
	}
}

func TestHasSubmitAction(t *testing.T) {
	t.Parallel()

	req := Request{SubmitActions: []string{"Notification", "crm"}}
	if !req.HasSubmitAction("notification") {
		t.Error("expected case-insensitive match for notification")
	}
	if req.HasSubmitAction("ticket") {
		t.Error("unexpected match for ticket")
	}
}
