package templates

import "strings"

const (
	keywordPoints    = 20
	departmentPoints = 30
)

// Match is the advisory result of scoring a request against the catalog. A
// zero Match (empty TemplateID, score 0) means nothing resembled the request.
type Match struct {
	TemplateID string `json:"templateId"`
	Score      int    `json:"score"`
}

// Match scores the request description and department against every catalog
// entry and keeps the single best result. Each keyword found as a
// case-insensitive substring of the description adds 20 points; an exact
// case-insensitive department match adds a flat 30. Ties keep the earliest
// catalog entry. The result is a hint, never a gate.
func (c *Catalog) Match(description, department string) Match {
	descLower := strings.ToLower(description)

	var best Match
	for _, entry := range c.entries {
		score := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(descLower, strings.ToLower(keyword)) {
				score += keywordPoints
			}
		}
		if strings.EqualFold(entry.Department, department) {
			score += departmentPoints
		}
		if score > best.Score {
			best = Match{TemplateID: entry.ID, Score: score}
		}
	}
	return best
}
