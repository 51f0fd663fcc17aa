package db

// MappingBuilder is a fluent builder for index mappings.
type MappingBuilder struct {
	m Mapping
}

// NewMapping starts building an index mapping.
func NewMapping() *MappingBuilder {
	return &MappingBuilder{}
}

// Integer adds an integer field.
func (b *MappingBuilder) Integer(name string) *MappingBuilder {
	return b.add(MappingField{Name: name, Type: FieldInteger})
}

// Long adds a long field.
func (b *MappingBuilder) Long(name string) *MappingBuilder {
	return b.add(MappingField{Name: name, Type: FieldLong})
}

// Text adds an analyzed text field using the engine default analyzer.
func (b *MappingBuilder) Text(name string) *MappingBuilder {
	return b.add(MappingField{Name: name, Type: FieldText})
}

// TextWithAnalyzer adds a text field with an explicit analyzer.
func (b *MappingBuilder) TextWithAnalyzer(name, analyzer string) *MappingBuilder {
	return b.add(MappingField{Name: name, Type: FieldText, Analyzer: analyzer})
}

// Keyword adds an exact-match keyword field.
func (b *MappingBuilder) Keyword(name string) *MappingBuilder {
	return b.add(MappingField{Name: name, Type: FieldKeyword})
}

// Date adds a date field.
func (b *MappingBuilder) Date(name string) *MappingBuilder {
	return b.add(MappingField{Name: name, Type: FieldDate})
}

// Build returns the mapping or a validation error.
func (b *MappingBuilder) Build() (*Mapping, error) {
	m := b.m
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// MustBuild returns the mapping or panics. For static mappings only.
func (b *MappingBuilder) MustBuild() *Mapping {
	m, err := b.Build()
	if err != nil {
		panic("invalid mapping: " + err.Error())
	}
	return m
}

func (b *MappingBuilder) add(f MappingField) *MappingBuilder {
	b.m.Fields = append(b.m.Fields, f)
	return b
}
