package query

// Clause is a single query-DSL clause. Source returns its wire form.
type Clause interface {
	Source() map[string]any
}

// MatchAllClause matches every document.
type MatchAllClause struct{}

// MatchAll returns a match_all clause.
func MatchAll() MatchAllClause { return MatchAllClause{} }

// Source implements Clause.
func (MatchAllClause) Source() map[string]any {
	return map[string]any{"match_all": map[string]any{}}
}

// Multi-match combination strategies.
const (
	MultiMatchBestFields = "best_fields"
)

// FuzzinessAuto scales typo tolerance with term length.
const FuzzinessAuto = "AUTO"

// MultiMatchClause runs a full-text match across several fields.
// Fields may carry a boost suffix ("title^2").
type MultiMatchClause struct {
	Query     string
	Fields    []string
	Type      string
	Fuzziness string
}

// MultiMatch returns a plain multi_match clause.
func MultiMatch(q string, fields ...string) MultiMatchClause {
	return MultiMatchClause{Query: q, Fields: fields}
}

// WithType sets the combination strategy.
func (c MultiMatchClause) WithType(t string) MultiMatchClause {
	c.Type = t
	return c
}

// WithFuzziness sets the fuzziness mode.
func (c MultiMatchClause) WithFuzziness(f string) MultiMatchClause {
	c.Fuzziness = f
	return c
}

// Source implements Clause.
func (c MultiMatchClause) Source() map[string]any {
	fields := make([]string, len(c.Fields))
	copy(fields, c.Fields)

	body := map[string]any{
		"query":  c.Query,
		"fields": fields,
	}
	if c.Type != "" {
		body["type"] = c.Type
	}
	if c.Fuzziness != "" {
		body["fuzziness"] = c.Fuzziness
	}
	return map[string]any{"multi_match": body}
}

// TermClause is an exact, non-analyzed match on a keyword field.
type TermClause struct {
	Field string
	Value string
}

// Term returns a term clause.
func Term(field, value string) TermClause {
	return TermClause{Field: field, Value: value}
}

// Source implements Clause.
func (c TermClause) Source() map[string]any {
	return map[string]any{"term": map[string]any{c.Field: c.Value}}
}

// RangeClause bounds a field inclusively. Empty bounds are omitted.
type RangeClause struct {
	Field string
	GTE   string
	LTE   string
}

// Range returns a range clause with optional inclusive bounds.
func Range(field, gte, lte string) RangeClause {
	return RangeClause{Field: field, GTE: gte, LTE: lte}
}

// IsEmpty reports whether neither bound is set.
func (c RangeClause) IsEmpty() bool { return c.GTE == "" && c.LTE == "" }

// Source implements Clause.
func (c RangeClause) Source() map[string]any {
	bounds := map[string]any{}
	if c.GTE != "" {
		bounds["gte"] = c.GTE
	}
	if c.LTE != "" {
		bounds["lte"] = c.LTE
	}
	return map[string]any{"range": map[string]any{c.Field: bounds}}
}
