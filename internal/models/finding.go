// Package models defines the domain types for docscheck.
package models

// MissingLink is a Markdown link whose target does not exist on disk.
type MissingLink struct {
	Path   string `json:"path"` // relative to the project root
	Line   int    `json:"line"`
	Target string `json:"target"` // raw target as written in the document
}

// LegacyReference is a mention of a path that has since moved.
type LegacyReference struct {
	Path        string `json:"path"`
	Line        int    `json:"line"`
	Legacy      string `json:"legacy"`
	Replacement string `json:"replacement"`
}

// LegacyPath maps an old path string to its canonical replacement.
type LegacyPath struct {
	Legacy      string `yaml:"legacy" json:"legacy"`
	Replacement string `yaml:"replacement" json:"replacement"`
}

// Report aggregates the findings of one scan pass in discovery order.
type Report struct {
	Files        []string          `json:"files"`
	MissingLinks []MissingLink     `json:"missing_links"`
	LegacyRefs   []LegacyReference `json:"legacy_refs"`
}

// OK reports whether the pass produced no findings.
func (r *Report) OK() bool {
	return len(r.MissingLinks) == 0 && len(r.LegacyRefs) == 0
}
