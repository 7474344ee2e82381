// Package ladder answers structural questions about ladder rungs: junctions,
// block port wiring, self-holding coils, series chains and parallel branches.
package ladder

import "github.com/ladderscope/core/internal/models"

// IsSelfHolding reports whether a coil holds itself: walking its wiring
// backwards through the contacts that feed coilIn, a non-negated contact on
// the coil's own operand is reached. A negated contact on that operand blocks
// the route through it; other routes are still searched.
//
// The walk uses an explicit stack and a visited set keyed on element identity,
// so cyclic wiring terminates.
func IsSelfHolding(operand string, coilIn []string, elems []models.Element) bool {
	if operand == "" || len(coilIn) == 0 {
		return false
	}

	visited := make(map[string]bool)
	stack := [][]string{coilIn}

	for len(stack) > 0 {
		frontier := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, e := range elems {
			contact, ok := e.Contact()
			if !ok || !intersects(e.Out, frontier) {
				continue
			}

			id := e.Identity()
			if visited[id] {
				continue
			}
			visited[id] = true

			if contact.Operand == operand {
				if contact.Negated {
					continue
				}
				return true
			}

			if len(e.In) > 0 {
				stack = append(stack, e.In)
			}
		}
	}

	return false
}

func SelfHoldingCoils(elems []models.Element) []int {
	var out []int
	for i, e := range elems {
		coil, ok := e.Coil()
		if !ok {
			continue
		}
		if IsSelfHolding(coil.Operand, e.In, elems) {
			out = append(out, i)
		}
	}
	return out
}
