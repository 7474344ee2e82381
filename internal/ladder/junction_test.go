// Package ladder answers structural questions about ladder rungs: junctions,
// block port wiring, self-holding coils, series chains and parallel branches.
package ladder

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestResolveIDSets(t *testing.T) {
	t.Run("transitive merge", func(t *testing.T) {
		j := ResolveIDSets([][]string{{"a"}, {"a", "b"}, {"c"}, {"b", "d"}})

		assert.Equal(t, [][]string{{"a", "b", "d"}, {"c"}}, j.Groups)
		assert.Equal(t, [][]string{{"a", "b", "d"}}, j.SuperNodes())
		assert.False(t, j.HasEmpty)
	})

	t.Run("empty sets are flagged but not merged", func(t *testing.T) {
		j := ResolveIDSets([][]string{{}, {"x"}, nil})

		assert.True(t, j.HasEmpty)
		assert.Equal(t, [][]string{{"x"}}, j.Groups)
		assert.Empty(t, j.SuperNodes())
	})

	t.Run("no sets gives no groups", func(t *testing.T) {
		j := ResolveIDSets(nil)

		assert.Empty(t, j.Groups)
		assert.False(t, j.HasEmpty)
	})

	t.Run("keys use the smallest member", func(t *testing.T) {
		j := ResolveIDSets([][]string{{"k2", "k9"}, {"k9", "k1"}, {"z"}})

		assert.Equal(t, "k1", j.Key([]string{"k9"}))
		assert.Equal(t, "k1", j.Key([]string{"k2", "k1"}))
		assert.Equal(t, "z", j.Key([]string{"z"}))
		assert.Equal(t, "", j.Key(nil))
	})

	t.Run("unknown ids keep their raw value", func(t *testing.T) {
		j := ResolveIDSets([][]string{{"a", "b"}})

		assert.Equal(t, "q", j.Key([]string{"q"}))
		assert.Equal(t, "a+q", j.Key([]string{"q", "b"}))
	})

	t.Run("same junction", func(t *testing.T) {
		j := ResolveIDSets([][]string{{"a", "b"}, {"c"}})

		assert.True(t, j.Same([]string{"a"}, []string{"b"}))
		assert.False(t, j.Same([]string{"a"}, []string{"c"}))
		assert.False(t, j.Same(nil, nil))
	})
}

func TestResolveJunctions(t *testing.T) {
	t.Run("coil input merges the outputs of parallel contacts", func(t *testing.T) {
		j := ResolveJunctions(parallelRung())

		assert.Equal(t, [][]string{{"a0", "a1", "a3"}}, j.SuperNodes())
		assert.True(t, j.HasEmpty)
		assert.Equal(t, j.Key(ids("a0")), j.Key(ids("a3")))
		assert.NotEqual(t, j.Key(ids("a0")), j.Key(ids("a2")))
	})

	t.Run("empty rung", func(t *testing.T) {
		j := ResolveJunctions(nil)

		assert.Empty(t, j.Groups)
	})
}

func idSetGen() gopter.Gen {
	id := gen.IntRange(0, 9).Map(func(v int) string {
		return string(rune('a' + v))
	})
	return gen.SliceOf(gen.SliceOf(id))
}

func shuffled(sets [][]string, seed int64) [][]string {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]string, len(sets))
	for i, set := range sets {
		cp := append([]string(nil), set...)
		rng.Shuffle(len(cp), func(a, b int) { cp[a], cp[b] = cp[b], cp[a] })
		out[i] = cp
	}
	rng.Shuffle(len(out), func(a, b int) { out[a], out[b] = out[b], out[a] })
	return out
}

func TestJunctionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("partition is independent of input order", prop.ForAll(
		func(sets [][]string, seed int64) bool {
			a := ResolveIDSets(sets)
			b := ResolveIDSets(shuffled(sets, seed))
			return reflect.DeepEqual(a.Groups, b.Groups) && a.HasEmpty == b.HasEmpty
		},
		idSetGen(),
		gen.Int64(),
	))

	properties.Property("merging is idempotent", prop.ForAll(
		func(sets [][]string) bool {
			once := ResolveIDSets(sets)
			twice := ResolveIDSets(once.Groups)
			return reflect.DeepEqual(once.Groups, twice.Groups)
		},
		idSetGen(),
	))

	properties.Property("ids sharing a set share a key", prop.ForAll(
		func(sets [][]string) bool {
			j := ResolveIDSets(sets)
			for _, set := range sets {
				for _, id := range set {
					if j.Key([]string{id}) != j.Key(set[:1]) {
						return false
					}
				}
			}
			return true
		},
		idSetGen(),
	))

	properties.Property("groups are disjoint", prop.ForAll(
		func(sets [][]string) bool {
			seen := make(map[string]bool)
			for _, group := range ResolveIDSets(sets).Groups {
				for _, id := range group {
					if seen[id] {
						return false
					}
					seen[id] = true
				}
			}
			return true
		},
		idSetGen(),
	))

	properties.TestingRun(t)
}
