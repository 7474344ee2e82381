// Package ladder answers structural questions about ladder rungs: junctions,
// block port wiring, self-holding coils, series chains and parallel branches.
package ladder

import "github.com/ladderscope/core/internal/models"

type Rung struct {
	Scope    string
	Section  string
	ID       int
	Elements []models.Element
}

type Body struct {
	Scope    string
	Section  string
	Elements []models.Element
}

type bodyKey struct {
	scope   string
	section string
}

type rungKey struct {
	bodyKey
	rung int
}

// GroupByRung splits a table into rungs in order of first appearance. The
// caller's slice is not modified.
func GroupByRung(elems []models.Element) []Rung {
	var rungs []Rung
	index := make(map[rungKey]int)

	for _, e := range elems {
		key := rungKey{bodyKey{e.Scope, e.Section}, e.Rung}
		i, ok := index[key]
		if !ok {
			i = len(rungs)
			index[key] = i
			rungs = append(rungs, Rung{Scope: e.Scope, Section: e.Section, ID: e.Rung})
		}
		rungs[i].Elements = append(rungs[i].Elements, e)
	}

	return rungs
}

func GroupByBody(elems []models.Element) []Body {
	var bodies []Body
	index := make(map[bodyKey]int)

	for _, e := range elems {
		key := bodyKey{e.Scope, e.Section}
		i, ok := index[key]
		if !ok {
			i = len(bodies)
			index[key] = i
			bodies = append(bodies, Body{Scope: e.Scope, Section: e.Section})
		}
		bodies[i].Elements = append(bodies[i].Elements, e)
	}

	return bodies
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
