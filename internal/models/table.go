// Package models defines the core data structures of the ladder element table.
// It includes the typed element model and the derived analysis records.
package models

// RawElement is one row as the extractor writes it. Attribute values are
// either strings or lists of strings; list-valued attributes may also arrive
// as serialized literals such as "['c1', 'c2']".
type RawElement struct {
	ScopeName   string         `json:"scope_name" yaml:"scope_name"`
	SectionName string         `json:"section_name" yaml:"section_name"`
	RungID      int            `json:"rung_id" yaml:"rung_id" validate:"gte=0"`
	Kind        string         `json:"kind" yaml:"kind" validate:"required,element_kind"`
	Subtype     string         `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Attributes  map[string]any `json:"attributes" yaml:"attributes"`
}

type RawTable struct {
	Elements []RawElement `json:"elements" yaml:"elements"`
}
