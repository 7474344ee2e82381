// Package models defines the core data structures of the ladder element table.
// It includes the typed element model and the derived analysis records.
package models

import "strings"

type Kind string

const (
	KindContact         Kind = "Contact"
	KindCoil            Kind = "Coil"
	KindBlock           Kind = "Block"
	KindLeftPowerRail   Kind = "LeftPowerRail"
	KindRightPowerRail  Kind = "RightPowerRail"
	KindDataSource      Kind = "DataSource"
	KindDataSink        Kind = "DataSink"
	KindInlineStatement Kind = "InlineStatement"
)

// Kinds lists every element kind the extractor can emit.
var Kinds = []Kind{
	KindContact,
	KindCoil,
	KindBlock,
	KindLeftPowerRail,
	KindRightPowerRail,
	KindDataSource,
	KindDataSink,
	KindInlineStatement,
}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Element is one decoded row of the element table.
type Element struct {
	Scope   string     `json:"scope_name"`
	Section string     `json:"section_name"`
	Rung    int        `json:"rung_id"`
	Kind    Kind       `json:"kind"`
	Subtype string     `json:"subtype,omitempty"`
	In      []string   `json:"in_list"`
	Out     []string   `json:"out_list"`
	Attrs   Attributes `json:"attributes,omitempty"`
}

func (e Element) Contact() (ContactAttrs, bool) {
	if e.Kind != KindContact {
		return ContactAttrs{}, false
	}
	a, ok := e.Attrs.(ContactAttrs)
	if !ok || a.Operand == "" {
		return ContactAttrs{}, false
	}
	return a, true
}

func (e Element) Coil() (CoilAttrs, bool) {
	if e.Kind != KindCoil {
		return CoilAttrs{}, false
	}
	a, ok := e.Attrs.(CoilAttrs)
	if !ok || a.Operand == "" {
		return CoilAttrs{}, false
	}
	return a, true
}

func (e Element) Block() (BlockAttrs, bool) {
	if e.Kind != KindBlock {
		return BlockAttrs{}, false
	}
	a, ok := e.Attrs.(BlockAttrs)
	return a, ok
}

func (e Element) Operand() (string, bool) {
	if c, ok := e.Contact(); ok {
		return c.Operand, true
	}
	if c, ok := e.Coil(); ok {
		return c.Operand, true
	}
	return "", false
}

// Label is the value other elements see when they are wired to e: the operand
// of a contact or coil, the identifier of a data source or sink, the rail tag
// for power rails and the subtype for everything else.
func (e Element) Label() string {
	switch e.Kind {
	case KindContact, KindCoil:
		op, _ := e.Operand()
		return op
	case KindDataSource, KindDataSink:
		if d, ok := e.Attrs.(DataAttrs); ok {
			return d.Identifier
		}
		return ""
	case KindLeftPowerRail, KindRightPowerRail:
		return string(e.Kind)
	default:
		return e.Subtype
	}
}

// Identity is the node identity used by backward feedback searches. The same
// operand may legitimately appear at several wiring positions in one rung.
func (e Element) Identity() string {
	op, _ := e.Operand()
	return op + "|" + strings.Join(e.In, ",") + "|" + strings.Join(e.Out, ",")
}

func (e Element) Ref(index int) ElementRef {
	ref := ElementRef{Index: index, Kind: e.Kind, Label: e.Label()}
	if c, ok := e.Contact(); ok {
		ref.Negated = c.Negated
	}
	return ref
}
