// Package model defines the data structures exchanged by the purl-component API,
// CLI and GraphQL schema.
package model

// Rule names the branch used to derive a component name
type Rule string

const (
	// RuleOCI derives "<repository path>/<name>" from the repository_url qualifier.
	RuleOCI Rule = "oci"
	// RuleRPMModule derives "<rpmmod>/<name>" from the rpmmod qualifier.
	RuleRPMModule Rule = "rpmmod"
	// RuleDefault returns the bare package name.
	RuleDefault Rule = "default"
)

// Qualifier is a single key=value pair from the qualifier section of a PURL
type Qualifier struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParsedPurl is the structural record of a PURL after parsing.
// Qualifiers are in canonical order (sorted by key) with empty values dropped.
type ParsedPurl struct {
	Type       string      `json:"type"`
	Namespace  string      `json:"namespace,omitempty"`
	Name       string      `json:"name"`
	Version    string      `json:"version,omitempty"`
	Qualifiers []Qualifier `json:"qualifiers,omitempty"`
	Subpath    string      `json:"subpath,omitempty"`
}

// Qualifier returns the value of the first qualifier named key, or "" when absent
func (p ParsedPurl) Qualifier(key string) string {
	for _, q := range p.Qualifiers {
		if q.Key == key {
			return q.Value
		}
	}
	return ""
}

// Component is the result of resolving a PURL into its component name
type Component struct {
	Purl      string     `json:"purl"`
	Component string     `json:"component"`
	Rule      Rule       `json:"rule"`
	Parsed    ParsedPurl `json:"parsed"`
}
