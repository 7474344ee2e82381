// Package ladder answers structural questions about ladder rungs: junctions,
// block port wiring, self-holding coils, series chains and parallel branches.
package ladder

import (
	"sort"
	"strings"

	"github.com/ladderscope/core/internal/models"
)

// Junctions partitions the connection ids of a rung into super-nodes: ids
// that are transitively linked by appearing together in one element's in or
// out list. Groups are tracked with union-find.
type Junctions struct {
	// Groups holds every super-node, members sorted, groups ordered by their
	// smallest member.
	Groups [][]string
	// HasEmpty records whether any element contributed an empty id set.
	HasEmpty bool

	parent map[string]string
	rank   map[string]int
	key    map[string]string
}

func ResolveJunctions(elems []models.Element) *Junctions {
	sets := make([][]string, 0, 2*len(elems))
	for _, e := range elems {
		sets = append(sets, e.In, e.Out)
	}
	return ResolveIDSets(sets)
}

// ResolveIDSets merges arbitrary id sets. The partition does not depend on
// the order of the sets or of the ids inside them.
func ResolveIDSets(sets [][]string) *Junctions {
	j := &Junctions{
		parent: make(map[string]string),
		rank:   make(map[string]int),
		key:    make(map[string]string),
	}

	for _, set := range sets {
		if len(set) == 0 {
			j.HasEmpty = true
			continue
		}
		for _, id := range set {
			j.add(id)
		}
		for _, id := range set[1:] {
			j.union(set[0], id)
		}
	}

	j.finalize()
	return j
}

func (j *Junctions) add(id string) {
	if _, ok := j.parent[id]; ok {
		return
	}
	j.parent[id] = id
	j.rank[id] = 0
}

func (j *Junctions) find(id string) string {
	root := id
	for j.parent[root] != root {
		root = j.parent[root]
	}

	// Path compression
	for id != root {
		next := j.parent[id]
		j.parent[id] = root
		id = next
	}

	return root
}

func (j *Junctions) union(a, b string) {
	rootA := j.find(a)
	rootB := j.find(b)
	if rootA == rootB {
		return
	}

	switch {
	case j.rank[rootA] < j.rank[rootB]:
		j.parent[rootA] = rootB
	case j.rank[rootA] > j.rank[rootB]:
		j.parent[rootB] = rootA
	default:
		j.parent[rootB] = rootA
		j.rank[rootA]++
	}
}

func (j *Junctions) finalize() {
	members := make(map[string][]string)
	for id := range j.parent {
		root := j.find(id)
		members[root] = append(members[root], id)
	}

	j.Groups = make([][]string, 0, len(members))
	for _, group := range members {
		sort.Strings(group)
		for _, id := range group {
			j.key[id] = group[0]
		}
		j.Groups = append(j.Groups, group)
	}

	sort.Slice(j.Groups, func(a, b int) bool {
		return j.Groups[a][0] < j.Groups[b][0]
	})
}

func (j *Junctions) SuperNodes() [][]string {
	var out [][]string
	for _, group := range j.Groups {
		if len(group) > 1 {
			out = append(out, group)
		}
	}
	return out
}

// Key returns the canonical super-node key of an id set: the smallest member
// of its group. Ids in single-member groups therefore keep their raw value.
// An empty set has the empty key.
func (j *Junctions) Key(ids []string) string {
	if len(ids) == 0 {
		return ""
	}

	var keys []string
	seen := make(map[string]bool)
	for _, id := range ids {
		k, ok := j.key[id]
		if !ok {
			k = id
		}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}

	if len(keys) == 1 {
		return keys[0]
	}
	sort.Strings(keys)
	return strings.Join(keys, "+")
}

func (j *Junctions) Same(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return j.Key(a) == j.Key(b)
}
