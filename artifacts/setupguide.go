package artifacts

import (
	"strconv"
	"strings"

	"github.com/callvuforge/api/cvuf"
	"github.com/callvuforge/api/intake"
)

// SetupGuide emits the numbered post-import instructions. The parsed document
// is accepted for contextual references only and is never modified.
func SetupGuide(req *intake.Request, doc *cvuf.Document) string {
	var steps []string

	steps = append(steps, "## Setup Guide\n")
	steps = append(steps, "### Step 1: Import CVUF")
	steps = append(steps, "1. Open CallVu Studio")
	steps = append(steps, "2. Click 'Create New Form' → 'Import'")
	steps = append(steps, "3. Paste the generated JSON")
	if doc != nil {
		if count := len(docSteps(doc)); count > 0 {
			steps = append(steps, importVerifyLine(count))
		} else {
			steps = append(steps, "4. Verify all screens imported correctly\n")
		}
	} else {
		steps = append(steps, "4. Verify all screens imported correctly\n")
	}

	steps = append(steps, "### Step 2: Configure Integrations")

	if req.HasSubmitAction("notification") {
		steps = append(steps, "\n**Email Notifications:**")
		steps = append(steps, "- Go to Settings → Integrations → Email")
		steps = append(steps, "- Configure SMTP or select email provider")
		steps = append(steps, "- Set recipients: "+orDefault(req.EmailRecipients, "[configure recipients]"))
	}

	if req.HasSubmitAction("crm") {
		steps = append(steps, "\n**"+orDefault(req.CRMSystem, "CRM")+" Integration:**")
		steps = append(steps, "- Go to Settings → Integrations → CRM")
		steps = append(steps, "- Add API credentials")
		steps = append(steps, "- Map form fields to CRM fields")
	}

	if req.NeedsDataLookup == "yes" {
		steps = append(steps, "\n**Data Lookup:**")
		steps = append(steps, "- Go to Settings → API Actions")
		steps = append(steps, "- Configure lookup endpoint")
		steps = append(steps, "- Map trigger field and response fields")
	}

	steps = append(steps, "\n### Step 3: Test")
	steps = append(steps, "1. Use Preview mode to test all paths")
	steps = append(steps, "2. Submit test entries")
	steps = append(steps, "3. Verify integrations fire correctly")
	steps = append(steps, "4. Check email/Slack notifications arrive")

	steps = append(steps, "\n### Step 4: Deploy")
	steps = append(steps, "1. Set form to 'Published'")
	steps = append(steps, "2. Configure access permissions")
	steps = append(steps, "3. Get shareable link or embed code")

	return strings.Join(steps, "\n")
}

func importVerifyLine(count int) string {
	noun := "screens"
	if count == 1 {
		noun = "screen"
	}
	return "4. Verify all " + strconv.Itoa(count) + " " + noun + " imported correctly\n"
}

func docSteps(doc *cvuf.Document) []any {
	s, _ := doc.Form["steps"].([]any)
	return s
}
