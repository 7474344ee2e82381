package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ladderscope/core/internal/ladder"
	"github.com/ladderscope/core/internal/models"
	"gopkg.in/yaml.v3"
)

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json", "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}

func rungTitle(r ladder.Rung) string {
	return fmt.Sprintf("%s/%s rung %d", r.Scope, r.Section, r.ID)
}

// refLabel renders a chain member; negated contacts get a leading slash.
func refLabel(e models.Element) string {
	if c, ok := e.Contact(); ok && c.Negated {
		return "/" + c.Operand
	}
	return e.Label()
}

func formatChain(elems []models.Element, c models.Chain) string {
	parts := make([]string, 0, len(c))
	for _, idx := range c {
		parts = append(parts, refLabel(elems[idx]))
	}
	return strings.Join(parts, " -> ")
}
