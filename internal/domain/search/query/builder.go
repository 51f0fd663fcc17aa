package query

import "encoding/json"

// Sort orders.
const (
	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// ScoreField sorts by relevance.
const ScoreField = "_score"

// SortField is one sort key.
type SortField struct {
	Field string
	Order string
}

// Builder accumulates typed clauses and serializes them once.
type Builder struct {
	must           []Clause
	filter         []Clause
	aggs           []Aggregation
	sort           []SortField
	page           *Page
	trackTotalHits bool
}

// NewBuilder returns an empty builder. An empty builder serializes to match_all.
func NewBuilder() *Builder {
	return &Builder{}
}

// Must adds a scoring clause.
func (b *Builder) Must(c Clause) *Builder {
	b.must = append(b.must, c)
	return b
}

// Filter adds a non-scoring clause.
func (b *Builder) Filter(c Clause) *Builder {
	b.filter = append(b.filter, c)
	return b
}

// Aggregate attaches an aggregation to the query.
func (b *Builder) Aggregate(a Aggregation) *Builder {
	b.aggs = append(b.aggs, a)
	return b
}

// SortBy appends a sort key.
func (b *Builder) SortBy(field, order string) *Builder {
	b.sort = append(b.sort, SortField{Field: field, Order: order})
	return b
}

// Paginate sets from/size.
func (b *Builder) Paginate(p Page) *Builder {
	b.page = &p
	return b
}

// TrackTotalHits requests an exact hit count.
func (b *Builder) TrackTotalHits() *Builder {
	b.trackTotalHits = true
	return b
}

// MustClauses returns the scoring clauses.
func (b *Builder) MustClauses() []Clause { return b.must }

// FilterClauses returns the non-scoring clauses.
func (b *Builder) FilterClauses() []Clause { return b.filter }

// Aggregations returns the attached aggregations.
func (b *Builder) Aggregations() []Aggregation { return b.aggs }

// Sort returns the sort keys in priority order.
func (b *Builder) Sort() []SortField { return b.sort }

// Page returns the pagination window, if any.
func (b *Builder) Page() (Page, bool) {
	if b.page == nil {
		return Page{}, false
	}
	return *b.page, true
}

// Build renders the request body.
func (b *Builder) Build() map[string]any {
	body := map[string]any{"query": b.buildQuery()}

	if len(b.aggs) > 0 {
		aggs := make(map[string]any, len(b.aggs))
		for _, a := range b.aggs {
			aggs[a.Name()] = a.Source()
		}
		body["aggs"] = aggs
	}

	if len(b.sort) > 0 {
		sort := make([]map[string]any, 0, len(b.sort))
		for _, s := range b.sort {
			sort = append(sort, map[string]any{s.Field: map[string]any{"order": s.Order}})
		}
		body["sort"] = sort
	}

	if b.page != nil {
		body["from"] = b.page.From()
		body["size"] = b.page.Size()
	}

	if b.trackTotalHits {
		body["track_total_hits"] = true
	}

	return body
}

// MarshalJSON implements json.Marshaler.
func (b *Builder) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Build())
}

func (b *Builder) buildQuery() map[string]any {
	if len(b.must) == 0 && len(b.filter) == 0 {
		return MatchAll().Source()
	}

	boolQuery := map[string]any{}
	if len(b.must) > 0 {
		boolQuery["must"] = sources(b.must)
	}
	if len(b.filter) > 0 {
		boolQuery["filter"] = sources(b.filter)
	}
	return map[string]any{"bool": boolQuery}
}

func sources(clauses []Clause) []map[string]any {
	out := make([]map[string]any, len(clauses))
	for i, c := range clauses {
		out[i] = c.Source()
	}
	return out
}
