// Package parser decodes extractor element tables into typed ladder elements.
// It handles attribute normalization, row validation and skipping of bad rows.
package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ladderscope/core/internal/models"
)

// portKeyPattern matches block port keys such as "Preset_inVar_in_list" or
// "Out_outVar_out_order". The parameter name itself may contain underscores.
var portKeyPattern = regexp.MustCompile(`^(.+)_(inVar|outVar|inoutVar)_(in|out)_(list|order)$`)

func firstString(attrs map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := attrs[key]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(scalarString(v)); s != "" {
			return s
		}
	}
	return ""
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func boolAttr(attrs map[string]any, key string) (bool, error) {
	v, ok := attrs[key]
	if !ok || v == nil {
		return false, nil
	}
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(strings.ToLower(s))
		if err != nil {
			return false, fmt.Errorf("%s: invalid boolean %q", key, t)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%s: invalid boolean %v", key, t)
	}
}

// idList reads a connection id set. Absent keys give an empty set, never nil.
func idList(attrs map[string]any, key string) ([]string, error) {
	ids, err := decodeIDs(attrs[key])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return ids, nil
}

func decodeIDs(v any) ([]string, error) {
	var ids []string
	switch t := v.(type) {
	case nil:
	case string:
		parsed, err := parseListLiteral(t)
		if err != nil {
			return nil, err
		}
		ids = parsed
	case []any:
		for _, item := range t {
			if item == nil {
				continue
			}
			ids = append(ids, strings.TrimSpace(scalarString(item)))
		}
	case []string:
		ids = append(ids, t...)
	default:
		ids = []string{strings.TrimSpace(scalarString(t))}
	}
	return uniqueIDs(ids), nil
}

// parseListLiteral decodes serialized set/list literals like "['c1', 'c2']",
// "{'c1'}", "set()" or a single bare id.
func parseListLiteral(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "set()" || s == "[]" || s == "{}" || s == "()" {
		return nil, nil
	}

	if strings.HasPrefix(s, "set(") {
		if !strings.HasSuffix(s, ")") {
			return nil, fmt.Errorf("unbalanced literal %q", s)
		}
		s = strings.TrimSpace(s[len("set(") : len(s)-1])
	}

	open, closing := s[0], byte(0)
	switch open {
	case '[':
		closing = ']'
	case '{':
		closing = '}'
	case '(':
		closing = ')'
	default:
		return []string{trimQuotes(s)}, nil
	}
	if s[len(s)-1] != closing {
		return nil, fmt.Errorf("unbalanced literal %q", s)
	}

	var ids []string
	for _, part := range strings.Split(s[1:len(s)-1], ",") {
		if id := trimQuotes(strings.TrimSpace(part)); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func trimQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// blockPorts collects every port key of a block attribute map. Keys are
// visited in sorted order so the port list is deterministic.
func blockPorts(attrs map[string]any) ([]models.Port, error) {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		if portKeyPattern.MatchString(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	ports := make([]models.Port, 0, len(keys))
	for _, key := range keys {
		port, ok := ParsePortKey(key)
		if !ok {
			continue
		}
		ids, err := decodeIDs(attrs[key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		port.IDs = ids
		ports = append(ports, port)
	}
	return ports, nil
}

// ParsePortKey splits a block attribute key into parameter name, role and
// direction.
func ParsePortKey(key string) (models.Port, bool) {
	m := portKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return models.Port{}, false
	}
	return models.Port{
		Key:   key,
		Name:  m[1],
		Role:  models.PortRole(m[2]),
		Dir:   models.Direction(m[3]),
		Order: m[4] == "order",
	}, true
}
