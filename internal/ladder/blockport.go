// Package ladder answers structural questions about ladder rungs: junctions,
// block port wiring, self-holding coils, series chains and parallel branches.
package ladder

import (
	"fmt"
	"strconv"

	"github.com/ladderscope/core/internal/models"
)

type PortScope string

const (
	// ScopeRung only matches neighbours in the block's own rung.
	ScopeRung PortScope = "rung"
	// ScopeBody matches neighbours anywhere in the block's body section.
	ScopeBody PortScope = "body"
)

func ParsePortScope(s string) (PortScope, error) {
	switch PortScope(s) {
	case ScopeRung, "":
		return ScopeRung, nil
	case ScopeBody:
		return ScopeBody, nil
	default:
		return "", fmt.Errorf("unknown port scope %q (want %q or %q)", s, ScopeRung, ScopeBody)
	}
}

func (s PortScope) contains(a, b models.Element) bool {
	if a.Scope != b.Scope || a.Section != b.Section {
		return false
	}
	return s == ScopeBody || a.Rung == b.Rung
}

// ResolveBlockPorts maps every port of every block to the labels of the
// elements wired to it. One entry is returned per block that declares at
// least one port; Index refers to elems. A port matches a neighbour only when
// their directions are opposite: a block input is fed by a neighbour's out
// list, a block output feeds a neighbour's in list. Ports without neighbours
// are absent from the map.
func ResolveBlockPorts(elems []models.Element, scope PortScope) []models.BlockPorts {
	var out []models.BlockPorts

	for i, blk := range elems {
		attrs, ok := blk.Block()
		if !ok || len(attrs.Ports) == 0 {
			continue
		}

		ports := make(models.PortMap)
		// A parameter may be declared by both a _list and an _order key.
		seen := make(map[string]bool)
		for _, port := range attrs.Ports {
			if len(port.IDs) == 0 {
				continue
			}
			for j, other := range elems {
				if j == i || !scope.contains(blk, other) {
					continue
				}
				for _, label := range neighbourLabels(port, other) {
					key := port.Name + "|" + string(port.Dir) + "|" + strconv.Itoa(j) + "|" + label
					if seen[key] {
						continue
					}
					seen[key] = true
					ports[port.Name] = append(ports[port.Name], label)
				}
			}
			if len(ports[port.Name]) == 0 {
				delete(ports, port.Name)
			}
		}

		out = append(out, models.BlockPorts{Index: i, Type: blk.Subtype, Ports: ports})
	}

	return out
}

func neighbourLabels(port models.Port, other models.Element) []string {
	want := port.Dir.Opposite()

	if attrs, ok := other.Block(); ok {
		var labels []string
		for _, q := range attrs.Ports {
			if q.Dir != want || !intersects(port.IDs, q.IDs) {
				continue
			}
			labels = append(labels, other.Subtype+"."+q.Name)
		}
		if len(labels) == 0 && intersects(port.IDs, plainList(other, want)) {
			labels = append(labels, other.Subtype)
		}
		return labels
	}

	if !intersects(port.IDs, plainList(other, want)) {
		return nil
	}

	label := other.Label()
	if label == "" {
		// Malformed neighbour, e.g. a contact without operand.
		return nil
	}
	return []string{label}
}

func plainList(e models.Element, dir models.Direction) []string {
	if dir == models.DirIn {
		return e.In
	}
	return e.Out
}
