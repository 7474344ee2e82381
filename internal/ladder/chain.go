// Package ladder answers structural questions about ladder rungs: junctions,
// block port wiring, self-holding coils, series chains and parallel branches.
package ladder

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ladderscope/core/internal/models"
)

// DefaultMaxChains bounds chain enumeration, which is combinatorial in the
// number of branch points of a rung.
const DefaultMaxChains = 10000

// BuildChains enumerates every maximal forward path of series-wired elements.
// Every eligible element is tried as a start, so the same physical path can be
// found several times; see DedupChains and MaximalChains. With includeCoils
// false only contacts take part.
func BuildChains(elems []models.Element, includeCoils bool) []models.Chain {
	chains, _ := BuildChainsLimit(elems, includeCoils, DefaultMaxChains)
	return chains
}

// BuildChainsLimit is BuildChains with an explicit cap on the number of
// chains. It reports whether enumeration stopped early. A limit <= 0 means no
// cap.
func BuildChainsLimit(elems []models.Element, includeCoils bool, limit int) ([]models.Chain, bool) {
	eligible := make([]bool, len(elems))
	for i, e := range elems {
		_, isContact := e.Contact()
		_, isCoil := e.Coil()
		eligible[i] = isContact || (includeCoils && isCoil)
	}

	succ := successors(elems, eligible)

	var chains []models.Chain
	for start := range elems {
		if !eligible[start] {
			continue
		}

		stack := []models.Chain{{start}}
		for len(stack) > 0 {
			path := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			tail := path[len(path)-1]
			extended := false
			// Push in reverse so lower indices are explored first.
			for k := len(succ[tail]) - 1; k >= 0; k-- {
				next := succ[tail][k]
				if containsIndex(path, next) {
					continue
				}
				grown := make(models.Chain, len(path)+1)
				copy(grown, path)
				grown[len(path)] = next
				stack = append(stack, grown)
				extended = true
			}

			if !extended {
				chains = append(chains, path)
				if limit > 0 && len(chains) >= limit {
					return chains, true
				}
			}
		}
	}

	return chains, false
}

func successors(elems []models.Element, eligible []bool) [][]int {
	consumers := make(map[string][]int)
	for j, e := range elems {
		if !eligible[j] {
			continue
		}
		for _, id := range e.In {
			consumers[id] = append(consumers[id], j)
		}
	}

	succ := make([][]int, len(elems))
	for i, e := range elems {
		if !eligible[i] {
			continue
		}
		seen := make(map[int]bool)
		for _, id := range e.Out {
			for _, j := range consumers[id] {
				if j != i && !seen[j] {
					seen[j] = true
					succ[i] = append(succ[i], j)
				}
			}
		}
		sort.Ints(succ[i])
	}
	return succ
}

func containsIndex(path models.Chain, idx int) bool {
	for _, p := range path {
		if p == idx {
			return true
		}
	}
	return false
}

func chainKey(c models.Chain) string {
	parts := make([]string, len(c))
	for i, idx := range c {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

func DedupChains(chains []models.Chain) []models.Chain {
	out := make([]models.Chain, 0, len(chains))
	seen := make(map[string]bool, len(chains))
	for _, c := range chains {
		key := chainKey(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// MaximalChains keeps only chains that are not a proper suffix of another
// chain, i.e. the paths discovered from their true starting element.
func MaximalChains(chains []models.Chain) []models.Chain {
	chains = DedupChains(chains)
	out := make([]models.Chain, 0, len(chains))
	for i, c := range chains {
		suffix := false
		for j, other := range chains {
			if i != j && len(other) > len(c) && other[len(other)-len(c):].Equal(c) {
				suffix = true
				break
			}
		}
		if !suffix {
			out = append(out, c)
		}
	}
	return out
}
