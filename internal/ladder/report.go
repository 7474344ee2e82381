// Package ladder answers structural questions about ladder rungs: junctions,
// block port wiring, self-holding coils, series chains and parallel branches.
package ladder

import "github.com/ladderscope/core/internal/models"

type Options struct {
	PortScope PortScope
	MaxChains int
}

func DefaultOptions() Options {
	return Options{
		PortScope: ScopeRung,
		MaxChains: DefaultMaxChains,
	}
}

// AnalyzeRung runs every analysis over one rung. Element indices in the
// report refer to r.Elements. Block ports are only resolved here when the
// port scope is ScopeRung.
func AnalyzeRung(r Rung, opts Options) models.RungReport {
	elems := r.Elements
	report := models.RungReport{
		Scope:    r.Scope,
		Section:  r.Section,
		Rung:     r.ID,
		Elements: len(elems),
	}

	report.Junctions = ResolveJunctions(elems).SuperNodes()

	chains, truncated := BuildChainsLimit(elems, true, opts.MaxChains)
	report.Truncated = truncated
	for _, c := range MaximalChains(chains) {
		refs := make([]models.ElementRef, 0, len(c))
		for _, idx := range c {
			refs = append(refs, elems[idx].Ref(idx))
		}
		report.Chains = append(report.Chains, refs)
	}

	seen := make(map[string]bool)
	for _, idx := range SelfHoldingCoils(elems) {
		op, _ := elems[idx].Operand()
		if !seen[op] {
			seen[op] = true
			report.SelfHolding = append(report.SelfHolding, op)
		}
	}

	report.Parallel = Branches(elems, parallelSets(elems, DedupChains(chains)))

	if opts.PortScope != ScopeBody {
		report.BlockPorts = ResolveBlockPorts(elems, ScopeRung)
	}

	return report
}

// AnalyzeTable groups a table into rungs and analyses each of them. With
// ScopeBody, block ports are resolved once per body section and element
// indices in BodyPorts refer to that body's elements in table order.
func AnalyzeTable(elems []models.Element, opts Options) models.TableReport {
	report := models.TableReport{Rungs: []models.RungReport{}}

	for _, r := range GroupByRung(elems) {
		report.Rungs = append(report.Rungs, AnalyzeRung(r, opts))
	}

	if opts.PortScope == ScopeBody {
		for _, b := range GroupByBody(elems) {
			report.BodyPorts = append(report.BodyPorts, models.BodyPorts{
				Scope:   b.Scope,
				Section: b.Section,
				Blocks:  ResolveBlockPorts(b.Elements, ScopeBody),
			})
		}
	}

	return report
}
