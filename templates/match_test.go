package templates

import (
	"testing"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog("")
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestMatch(t *testing.T) {
	t.Parallel()
	catalog := mustCatalog(t)

	tests := []struct {
		name        string
		description string
		department  string
		wantID      string
		wantScore   int
	}{
		{
			name:        "pto request with department bonus",
			description: "time off vacation leave",
			department:  "HR",
			wantID:      "pto_request",
			wantScore:   3*20 + 30, // vacation, time off, leave + department
		},
		{
			name:        "keyword only",
			description: "submit an expense with receipt",
			department:  "Engineering",
			wantID:      "expense_report",
			wantScore:   40,
		},
		{
			name:        "department only",
			description: "something entirely novel",
			department:  "Sales",
			wantID:      "quote_request",
			wantScore:   30,
		},
		{
			name:        "case insensitive matching",
			description: "VACATION planner",
			department:  "hr",
			wantID:      "pto_request",
			wantScore:   50,
		},
		{
			name:        "no match at all",
			description: "unrelated request",
			department:  "Legal",
			wantID:      "",
			wantScore:   0,
		},
		{
			name:        "tie keeps first catalog entry",
			description: "onboard a new vendor", // "onboard" hits vendor_registration, "onboarding"? no
			department:  "Finance",
			wantID:      "vendor_registration",
			wantScore:   40 + 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := catalog.Match(tt.description, tt.department)
			if got.TemplateID != tt.wantID || got.Score != tt.wantScore {
				t.Fatalf("Match(%q, %q) = %+v, want {%s %d}", tt.description, tt.department, got, tt.wantID, tt.wantScore)
			}
		})
	}
}

func TestMatchZeroIffNothingMatched(t *testing.T) {
	t.Parallel()
	catalog := mustCatalog(t)

	got := catalog.Match("", "")
	if got.TemplateID != "" || got.Score != 0 {
		t.Fatalf("empty inputs should produce zero match, got %+v", got)
	}
}

func TestMatchTieKeepsEarliestEntry(t *testing.T) {
	t.Parallel()
	catalog := mustCatalog(t)

	// "registration" alone scores 20 for vendor_registration; "question" alone
	// scores 20 for contact_form. A description hitting exactly one keyword of
	// each ties at 20 and must keep vendor_registration (earlier in catalog).
	got := catalog.Match("registration question", "Legal")
	if got.TemplateID != "vendor_registration" {
		t.Fatalf("tie should keep earliest entry, got %+v", got)
	}
	if got.Score != 20 {
		t.Fatalf("unexpected score %d", got.Score)
	}
}
