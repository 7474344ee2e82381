// Package parser decodes extractor element tables into typed ladder elements.
// It handles attribute normalization, row validation and skipping of bad rows.
package parser

import (
	"github.com/ladderscope/core/internal/models"
)

type rungKey struct {
	scope   string
	section string
	rung    int
}

// BuildStats summarises a decoded table: element and rung totals plus a
// per-kind breakdown.
func BuildStats(table *Table) *models.Stats {
	stats := &models.Stats{
		ElementsByKind: make(map[models.Kind]int),
	}
	if table == nil {
		return stats
	}

	rungs := make(map[rungKey]bool)
	for _, elem := range table.Elements {
		stats.TotalElements++
		stats.ElementsByKind[elem.Kind]++
		rungs[rungKey{elem.Scope, elem.Section, elem.Rung}] = true
	}
	stats.TotalRungs = len(rungs)

	return stats
}
