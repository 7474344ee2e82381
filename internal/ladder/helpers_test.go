// Package ladder answers structural questions about ladder rungs: junctions,
// block port wiring, self-holding coils, series chains and parallel branches.
package ladder

import "github.com/ladderscope/core/internal/models"

func ids(s ...string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func contact(operand string, negated bool, in, out []string) models.Element {
	return models.Element{
		Scope: "Main", Section: "Body", Rung: 0,
		Kind:  models.KindContact,
		In:    in,
		Out:   out,
		Attrs: models.ContactAttrs{Operand: operand, Negated: negated},
	}
}

func coil(operand string, in, out []string) models.Element {
	return models.Element{
		Scope: "Main", Section: "Body", Rung: 0,
		Kind:  models.KindCoil,
		In:    in,
		Out:   out,
		Attrs: models.CoilAttrs{Operand: operand},
	}
}

func rail(kind models.Kind, in, out []string) models.Element {
	return models.Element{
		Scope: "Main", Section: "Body", Rung: 0,
		Kind:  kind,
		In:    in,
		Out:   out,
		Attrs: models.RailAttrs{},
	}
}

func data(kind models.Kind, identifier string, in, out []string) models.Element {
	return models.Element{
		Scope: "Main", Section: "Body", Rung: 0,
		Kind:  kind,
		In:    in,
		Out:   out,
		Attrs: models.DataAttrs{Identifier: identifier},
	}
}

func block(subtype string, ports ...models.Port) models.Element {
	return models.Element{
		Scope: "Main", Section: "Body", Rung: 0,
		Kind:    models.KindBlock,
		Subtype: subtype,
		In:      ids(),
		Out:     ids(),
		Attrs:   models.BlockAttrs{Ports: ports},
	}
}

func port(name string, role models.PortRole, dir models.Direction, portIDs ...string) models.Port {
	return models.Port{
		Key:  name + "_" + string(role) + "_" + string(dir) + "_list",
		Name: name,
		Role: role,
		Dir:  dir,
		IDs:  portIDs,
	}
}

func inRung(e models.Element, rung int) models.Element {
	e.Rung = rung
	return e
}

// parallelRung is rail -> (X0 | X1) -> Y0 -> rail, with X1 in series with X2
// on a second alternative: rail -> X2 -> X3 -> Y0.
//
//	|--[X0]--+--(Y0)--|
//	|--[X1]--+
//	|--[X2]--[X3]--+
func parallelRung() []models.Element {
	return []models.Element{
		rail(models.KindLeftPowerRail, ids(), ids("p0")),
		contact("X0", false, ids("p0"), ids("a0")),
		contact("X1", false, ids("p0"), ids("a1")),
		contact("X2", false, ids("p0"), ids("a2")),
		contact("X3", true, ids("a2"), ids("a3")),
		coil("Y0", ids("a0", "a1", "a3"), ids("y0")),
		rail(models.KindRightPowerRail, ids("y0"), ids()),
	}
}
