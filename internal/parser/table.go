// Package parser decodes extractor element tables into typed ladder elements.
// It handles attribute normalization, row validation and skipping of bad rows.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ladderscope/core/internal/models"
	"gopkg.in/yaml.v3"
)

// Table is a decoded element table. Rows that could not be decoded are left
// out of Elements and listed in Skipped so the caller can surface them as
// data-quality warnings.
type Table struct {
	Elements []models.Element `json:"elements"`
	Skipped  []RowError       `json:"skipped,omitempty"`
}

type RowError struct {
	Index  int    `json:"index" yaml:"index"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Reason string `json:"reason" yaml:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %s", e.Index, e.Kind, e.Reason)
}

// ParseTable decodes a JSON element table, either a bare array of rows or an
// object with an "elements" array.
func ParseTable(data []byte) (*Table, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty element table data")
	}

	var rows []models.RawElement
	if data[0] == '[' {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("failed to unmarshal element table: %w", err)
		}
	} else {
		var raw models.RawTable
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal element table: %w", err)
		}
		rows = raw.Elements
	}

	return BuildTable(rows), nil
}

// ParseTableYAML decodes the same row layout from YAML. The top-level node
// decides the form, so leading comments and document markers are fine.
func ParseTableYAML(data []byte) (*Table, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty element table data")
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal element table: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty element table data")
	}

	var rows []models.RawElement
	switch root := doc.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&rows); err != nil {
			return nil, fmt.Errorf("failed to unmarshal element table: %w", err)
		}
	case yaml.MappingNode:
		var raw models.RawTable
		if err := root.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal element table: %w", err)
		}
		rows = raw.Elements
	default:
		return nil, fmt.Errorf("failed to unmarshal element table: expected a list of rows or an elements mapping")
	}

	return BuildTable(rows), nil
}

// BuildTable decodes raw rows, skipping the malformed ones.
func BuildTable(rows []models.RawElement) *Table {
	table := &Table{Elements: make([]models.Element, 0, len(rows))}

	for i := range rows {
		elem, err := DecodeElement(&rows[i])
		if err != nil {
			table.Skipped = append(table.Skipped, RowError{
				Index:  i,
				Kind:   rows[i].Kind,
				Reason: err.Error(),
			})
			continue
		}
		table.Elements = append(table.Elements, elem)
	}

	return table
}

// DecodeElement validates one row and decodes its attribute map into the
// typed variant for its kind.
func DecodeElement(raw *models.RawElement) (models.Element, error) {
	if err := validateRow(raw); err != nil {
		return models.Element{}, err
	}

	attrs := raw.Attributes
	in, err := idList(attrs, "in_list")
	if err != nil {
		return models.Element{}, err
	}
	out, err := idList(attrs, "out_list")
	if err != nil {
		return models.Element{}, err
	}

	elem := models.Element{
		Scope:   raw.ScopeName,
		Section: raw.SectionName,
		Rung:    raw.RungID,
		Kind:    models.Kind(raw.Kind),
		Subtype: raw.Subtype,
		In:      in,
		Out:     out,
	}

	switch elem.Kind {
	case models.KindContact:
		elem.Attrs, err = decodeContact(attrs)
	case models.KindCoil:
		elem.Attrs, err = decodeCoil(attrs)
	case models.KindBlock:
		elem.Attrs, err = decodeBlock(attrs)
	case models.KindDataSource, models.KindDataSink:
		elem.Attrs, err = decodeData(attrs)
	case models.KindLeftPowerRail, models.KindRightPowerRail:
		elem.Attrs = models.RailAttrs{}
	case models.KindInlineStatement:
		elem.Attrs = models.InlineAttrs{Text: firstString(attrs, "text", "statement")}
	}
	if err != nil {
		return models.Element{}, err
	}

	return elem, nil
}

func decodeContact(attrs map[string]any) (models.Attributes, error) {
	operand := firstString(attrs, "operand")
	if operand == "" {
		return nil, fmt.Errorf("contact is missing operand")
	}

	negated, err := boolAttr(attrs, "negated")
	if err != nil {
		return nil, err
	}

	edge := models.Edge(firstString(attrs, "edge"))
	switch edge {
	case models.EdgeNone, models.EdgeRising, models.EdgeFalling:
	case "none":
		edge = models.EdgeNone
	default:
		return nil, fmt.Errorf("edge: unknown value %q", edge)
	}

	return models.ContactAttrs{Operand: operand, Negated: negated, Edge: edge}, nil
}

func decodeCoil(attrs map[string]any) (models.Attributes, error) {
	operand := firstString(attrs, "operand")
	if operand == "" {
		return nil, fmt.Errorf("coil is missing operand")
	}

	latch := models.Latch(firstString(attrs, "latch", "storage"))
	switch latch {
	case models.LatchNone, models.LatchSet, models.LatchReset:
	case "none":
		latch = models.LatchNone
	default:
		return nil, fmt.Errorf("latch: unknown value %q", latch)
	}

	return models.CoilAttrs{Operand: operand, Latch: latch}, nil
}

func decodeData(attrs map[string]any) (models.Attributes, error) {
	id := firstString(attrs, "identifier", "expression")
	if id == "" {
		return nil, fmt.Errorf("data element is missing identifier")
	}
	return models.DataAttrs{Identifier: id}, nil
}

func decodeBlock(attrs map[string]any) (models.Attributes, error) {
	ports, err := blockPorts(attrs)
	if err != nil {
		return nil, err
	}
	return models.BlockAttrs{Ports: ports}, nil
}
