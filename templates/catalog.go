// Package templates holds the catalog of known microapp archetypes and the
// heuristic matcher that suggests the closest one for a request.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Entry describes one known form archetype in the catalog.
type Entry struct {
	ID         string   `toml:"id" json:"id"`
	Keywords   []string `toml:"keywords" json:"keywords"`
	Department string   `toml:"department" json:"department"`
}

// Builtin is the shipped archetype catalog. Order matters: ties during
// matching keep the earliest entry.
var Builtin = []Entry{
	{ID: "customer_complaint", Keywords: []string{"complaint", "issue", "problem", "customer service", "support ticket"}, Department: "Customer Service"},
	{ID: "feedback_survey", Keywords: []string{"feedback", "survey", "satisfaction", "nps", "rating"}, Department: "Customer Service"},
	{ID: "pto_request", Keywords: []string{"pto", "vacation", "time off", "leave", "absence"}, Department: "HR"},
	{ID: "expense_report", Keywords: []string{"expense", "reimbursement", "receipt", "travel"}, Department: "Finance"},
	{ID: "onboarding", Keywords: []string{"onboarding", "new hire", "new employee", "orientation"}, Department: "HR"},
	{ID: "incident_report", Keywords: []string{"incident", "accident", "safety", "injury"}, Department: "Operations"},
	{ID: "maintenance_request", Keywords: []string{"maintenance", "repair", "fix", "broken", "facilities"}, Department: "Operations"},
	{ID: "vendor_registration", Keywords: []string{"vendor", "supplier", "registration", "onboard"}, Department: "Finance"},
	{ID: "contact_form", Keywords: []string{"contact", "inquiry", "general", "question"}, Department: "Marketing"},
	{ID: "quote_request", Keywords: []string{"quote", "pricing", "estimate", "proposal"}, Department: "Sales"},
}

// Catalog is a read-only ordered set of archetype entries.
type Catalog struct {
	entries []Entry
}

// NewCatalog builds a catalog from the builtin entries plus any custom
// entries loaded from dir. Custom entries are appended after builtins so they
// never win a tie against a shipped archetype.
func NewCatalog(dir string) (*Catalog, error) {
	entries := make([]Entry, len(Builtin))
	copy(entries, Builtin)

	if strings.TrimSpace(dir) != "" {
		custom, err := loadEntriesFromDir(dir)
		if err != nil {
			return nil, err
		}
		entries = append(entries, custom...)
	}

	return &Catalog{entries: entries}, nil
}

// Entries returns a copy of the catalog contents.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// DefaultCatalogDir resolves the custom catalog directory from the
// environment. Empty means builtins only.
func DefaultCatalogDir() string {
	return strings.TrimSpace(os.Getenv("TEMPLATE_CATALOG_DIR"))
}

type catalogFile struct {
	Templates []Entry `toml:"templates"`
}

func loadEntriesFromDir(dir string) ([]Entry, error) {
	pattern := filepath.Join(dir, "*.toml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(files)

	var entries []Entry
	seen := make(map[string]struct{}, len(Builtin))
	for _, entry := range Builtin {
		seen[entry.ID] = struct{}{}
	}

	for _, path := range files {
		var file catalogFile
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", path, err)
		}
		for _, entry := range file.Templates {
			if err := validateEntry(entry); err != nil {
				return nil, fmt.Errorf("catalog %s: %w", path, err)
			}
			if _, dup := seen[entry.ID]; dup {
				return nil, fmt.Errorf("catalog %s: duplicate template id %q", path, entry.ID)
			}
			seen[entry.ID] = struct{}{}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func validateEntry(entry Entry) error {
	if strings.TrimSpace(entry.ID) == "" {
		return fmt.Errorf("template id is required")
	}
	if len(entry.Keywords) == 0 {
		return fmt.Errorf("template %q has no keywords", entry.ID)
	}
	return nil
}
