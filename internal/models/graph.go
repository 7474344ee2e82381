// Package models defines the core data structures of the ladder element table.
// It includes the typed element model and the derived analysis records.
package models

// Chain is one maximal forward path, as indices into the analysed element
// slice.
type Chain []int

func (c Chain) Equal(other Chain) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

type PortMap map[string][]string

type BlockPorts struct {
	Index int     `json:"index" yaml:"index"`
	Type  string  `json:"block_type" yaml:"block_type"`
	Ports PortMap `json:"ports" yaml:"ports"`
}

// ParallelSet holds every distinct branch found parallel to one reference
// contact. Branches are contact indices ordered along their chain.
type ParallelSet struct {
	Ref      int     `json:"ref" yaml:"ref"`
	Branches []Chain `json:"branches" yaml:"branches"`
}

type ElementRef struct {
	Index   int    `json:"index" yaml:"index"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Label   string `json:"label" yaml:"label"`
	Negated bool   `json:"negated,omitempty" yaml:"negated,omitempty"`
}

type ParallelBranch struct {
	Ref      ElementRef   `json:"ref" yaml:"ref"`
	Contacts []ElementRef `json:"contacts" yaml:"contacts"`
}

type RungReport struct {
	Scope       string           `json:"scope_name" yaml:"scope_name"`
	Section     string           `json:"section_name" yaml:"section_name"`
	Rung        int              `json:"rung_id" yaml:"rung_id"`
	Elements    int              `json:"elements" yaml:"elements"`
	Junctions   [][]string       `json:"junctions,omitempty" yaml:"junctions,omitempty"`
	Chains      [][]ElementRef   `json:"chains,omitempty" yaml:"chains,omitempty"`
	Truncated   bool             `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	SelfHolding []string         `json:"self_holding,omitempty" yaml:"self_holding,omitempty"`
	Parallel    []ParallelBranch `json:"parallel,omitempty" yaml:"parallel,omitempty"`
	BlockPorts  []BlockPorts     `json:"block_ports,omitempty" yaml:"block_ports,omitempty"`
}

type Stats struct {
	TotalElements  int          `json:"total_elements" yaml:"total_elements"`
	TotalRungs     int          `json:"total_rungs" yaml:"total_rungs"`
	ElementsByKind map[Kind]int `json:"elements_by_kind,omitempty" yaml:"elements_by_kind,omitempty"`
}

type TableReport struct {
	Rungs []RungReport `json:"rungs" yaml:"rungs"`
	// BodyPorts is filled instead of the per-rung block ports when ports are
	// resolved across a whole body section.
	BodyPorts []BodyPorts `json:"body_ports,omitempty" yaml:"body_ports,omitempty"`
	Stats     *Stats      `json:"stats,omitempty" yaml:"stats,omitempty"`
}

type BodyPorts struct {
	Scope   string       `json:"scope_name" yaml:"scope_name"`
	Section string       `json:"section_name" yaml:"section_name"`
	Blocks  []BlockPorts `json:"blocks" yaml:"blocks"`
}
