package db

import (
	"errors"
	"strconv"
)

// FieldType enumerates supported search mapping field types.
type FieldType string

const (
	// FieldInteger is a 32-bit integer field.
	FieldInteger FieldType = "integer"
	// FieldLong is a 64-bit integer field.
	FieldLong FieldType = "long"
	// FieldText is an analyzed full-text field.
	FieldText FieldType = "text"
	// FieldKeyword is an exact-match categorical field.
	FieldKeyword FieldType = "keyword"
	// FieldDate is a timestamp field.
	FieldDate FieldType = "date"
)

// AnalyzerStandard is the engine's default text analyzer.
const AnalyzerStandard = "standard"

// MappingField describes a single field in an index mapping.
type MappingField struct {
	Name     string
	Type     FieldType
	Analyzer string // text fields only
}

// Mapping is a complete index mapping used by CreateIndex.
type Mapping struct {
	Fields []MappingField
}

// Validate checks that the mapping is well-formed.
func (m *Mapping) Validate() error {
	if len(m.Fields) == 0 {
		return errors.New("at least one field is required")
	}

	seen := make(map[string]bool)
	for i := range m.Fields {
		f := &m.Fields[i]
		if f.Name == "" {
			return errors.New("field name is required at index " + strconv.Itoa(i))
		}
		if seen[f.Name] {
			return errors.New("duplicate field name: " + f.Name)
		}
		seen[f.Name] = true

		if f.Analyzer != "" && f.Type != FieldText {
			return errors.New("analyzer is only valid on text fields: " + f.Name)
		}
	}
	return nil
}

// Body renders the mapping as an index-creation request body.
func (m *Mapping) Body() map[string]any {
	props := make(map[string]any, len(m.Fields))
	for _, f := range m.Fields {
		prop := map[string]any{"type": string(f.Type)}
		if f.Analyzer != "" {
			prop["analyzer"] = f.Analyzer
		}
		props[f.Name] = prop
	}
	return map[string]any{
		"mappings": map[string]any{"properties": props},
	}
}
