// Package models defines the core data structures of the ladder element table.
// It includes the typed element model and the derived analysis records.
package models

// Attributes is the kind-specific payload of an element. The set of
// implementations is closed; the parser picks one per kind when the table is
// decoded.
type Attributes interface {
	attributes()
}

type Edge string

const (
	EdgeNone    Edge = ""
	EdgeRising  Edge = "rising"
	EdgeFalling Edge = "falling"
)

type Latch string

const (
	LatchNone  Latch = ""
	LatchSet   Latch = "set"
	LatchReset Latch = "reset"
)

type ContactAttrs struct {
	Operand string `json:"operand"`
	Negated bool   `json:"negated"`
	Edge    Edge   `json:"edge,omitempty"`
}

type CoilAttrs struct {
	Operand string `json:"operand"`
	Latch   Latch  `json:"latch,omitempty"`
}

type BlockAttrs struct {
	Ports []Port `json:"ports"`
}

type DataAttrs struct {
	Identifier string `json:"identifier"`
}

type RailAttrs struct{}

type InlineAttrs struct {
	Text string `json:"text,omitempty"`
}

func (ContactAttrs) attributes() {}
func (CoilAttrs) attributes()    {}
func (BlockAttrs) attributes()   {}
func (DataAttrs) attributes()    {}
func (RailAttrs) attributes()    {}
func (InlineAttrs) attributes()  {}

type PortRole string

const (
	RoleInVar    PortRole = "inVar"
	RoleOutVar   PortRole = "outVar"
	RoleInOutVar PortRole = "inoutVar"
)

type Direction string

const (
	DirIn  Direction = "in"
	DirOut Direction = "out"
)

func (d Direction) Opposite() Direction {
	if d == DirIn {
		return DirOut
	}
	return DirIn
}

// Port is one named connection group of a function block, decoded from an
// attribute key such as "Preset_inVar_in_list".
type Port struct {
	Key  string    `json:"key"`
	Name string    `json:"name"`
	Role PortRole  `json:"role"`
	Dir  Direction `json:"dir"`
	IDs  []string  `json:"ids,omitempty"`
	// Order marks ports declared with an "_order" key suffix.
	Order bool `json:"order,omitempty"`
}
