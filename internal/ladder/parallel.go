// Package ladder answers structural questions about ladder rungs: junctions,
// block port wiring, self-holding coils, series chains and parallel branches.
package ladder

import (
	"sort"

	"github.com/ladderscope/core/internal/models"
)

// ParallelBranches finds, for every contact of a rung, the runs of contacts
// that connect the same two junctions as that contact: OR alternatives in the
// ladder. The result is keyed by the reference contact's index in elems;
// contacts without any parallel branch are absent.
func ParallelBranches(elems []models.Element) map[int]*models.ParallelSet {
	sets, _ := ParallelBranchesLimit(elems, DefaultMaxChains)
	return sets
}

// ParallelBranchesLimit is ParallelBranches over at most limit chains. It
// reports whether chain enumeration was cut short. A limit <= 0 means no cap.
func ParallelBranchesLimit(elems []models.Element, limit int) (map[int]*models.ParallelSet, bool) {
	chains, truncated := BuildChainsLimit(elems, true, limit)
	return parallelSets(elems, DedupChains(chains)), truncated
}

func parallelSets(elems []models.Element, chains []models.Chain) map[int]*models.ParallelSet {
	junctions := ResolveJunctions(elems)

	isContact := make([]bool, len(elems))
	for i, e := range elems {
		_, isContact[i] = e.Contact()
	}

	result := make(map[int]*models.ParallelSet)
	for ref, r := range elems {
		if !isContact[ref] || len(r.In) == 0 || len(r.Out) == 0 {
			continue
		}

		for _, chain := range chains {
			started := false
			var branch models.Chain

			for _, idx := range chain {
				if !isContact[idx] {
					continue
				}
				if idx == ref {
					// The reference's own path is not an alternative to it.
					started = false
					branch = nil
					continue
				}
				if !started && junctions.Same(elems[idx].In, r.In) {
					started = true
					branch = nil
				}
				if !started {
					continue
				}

				branch = append(branch, idx)
				if junctions.Same(elems[idx].Out, r.Out) {
					addBranch(result, ref, branch)
					started = false
					branch = nil
				}
			}
		}
	}

	return result
}

func addBranch(result map[int]*models.ParallelSet, ref int, branch models.Chain) {
	set, ok := result[ref]
	if !ok {
		set = &models.ParallelSet{Ref: ref}
		result[ref] = set
	}
	for _, existing := range set.Branches {
		if existing.Equal(branch) {
			return
		}
	}
	set.Branches = append(set.Branches, branch)
}

func SortedRefs(sets map[int]*models.ParallelSet) []int {
	refs := make([]int, 0, len(sets))
	for ref := range sets {
		refs = append(refs, ref)
	}
	sort.Ints(refs)
	return refs
}

// ContactsInParallelWith returns the operands of the non-negated contacts that
// are wired in parallel with any contact on operand, in discovery order and
// without repeats.
func ContactsInParallelWith(elems []models.Element, operand string) []string {
	sets := ParallelBranches(elems)

	var out []string
	seen := make(map[string]bool)
	for _, ref := range SortedRefs(sets) {
		if op, _ := elems[ref].Operand(); op != operand {
			continue
		}
		for _, branch := range sets[ref].Branches {
			for _, idx := range branch {
				c, ok := elems[idx].Contact()
				if !ok || c.Negated || seen[c.Operand] {
					continue
				}
				seen[c.Operand] = true
				out = append(out, c.Operand)
			}
		}
	}
	return out
}

func Branches(elems []models.Element, sets map[int]*models.ParallelSet) []models.ParallelBranch {
	var out []models.ParallelBranch
	for _, ref := range SortedRefs(sets) {
		for _, branch := range sets[ref].Branches {
			pb := models.ParallelBranch{Ref: elems[ref].Ref(ref)}
			for _, idx := range branch {
				pb.Contacts = append(pb.Contacts, elems[idx].Ref(idx))
			}
			out = append(out, pb)
		}
	}
	return out
}
