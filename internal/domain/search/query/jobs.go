package query

import "strings"

// Job document field names.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// Aggregation names used by faceted job search.
const (
	AggLocations     = "locations"
	AggCreationDates = "creation_dates"

	// LocationFacetSize is the number of location buckets returned.
	LocationFacetSize = 20
	// MonthFormat labels creation-date buckets as year-month.
	MonthFormat = "yyyy-MM"
	// TitleBoost weighs title matches against description matches.
	TitleBoost = "^2"
)

// JobFilter is the simple job search input. Empty values are ignored.
type JobFilter struct {
	Keyword  string
	Location string
}

// IsEmpty reports whether no filter is set.
func (f JobFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Keyword) == "" && strings.TrimSpace(f.Location) == ""
}

// DateRange bounds job creation time. Either bound may be empty.
type DateRange struct {
	From string
	To   string
}

// IsEmpty reports whether neither bound is set.
func (r DateRange) IsEmpty() bool { return r.From == "" && r.To == "" }

// FacetRequest is the faceted job search input.
type FacetRequest struct {
	Keyword  string
	Location string
	Created  DateRange
	Page     Page
}

// SimpleJobQuery plans the plain job search: keyword matches title and description,
// location is an exact term, and no filters means match_all.
func SimpleJobQuery(f JobFilter) *Builder {
	b := NewBuilder()
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		b.Must(MultiMatch(kw, FieldTitle, FieldDescription))
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		b.Must(Term(FieldLocation, loc))
	}
	return b
}

// FacetJobQuery plans the faceted job search.
//
// Keyword matching is best_fields with AUTO fuzziness and title boosted 2x; a blank
// keyword matches everything. Location and creation range are non-scoring filters.
// Results sort by score then newest first. Aggregations run in the same filtered
// query context, so facet counts describe the filtered set.
func FacetJobQuery(r FacetRequest) *Builder {
	b := NewBuilder()

	if kw := strings.TrimSpace(r.Keyword); kw != "" {
		b.Must(MultiMatch(kw, FieldTitle+TitleBoost, FieldDescription).
			WithType(MultiMatchBestFields).
			WithFuzziness(FuzzinessAuto))
	} else {
		b.Must(MatchAll())
	}

	if strings.TrimSpace(r.Location) != "" {
		b.Filter(Term(FieldLocation, r.Location))
	}

	if !r.Created.IsEmpty() {
		b.Filter(Range(FieldCreatedAt, r.Created.From, r.Created.To))
	}

	page := r.Page
	if page.Size() == 0 {
		page = NewPage(page.Number(), 0)
	}

	return b.
		Aggregate(Terms(AggLocations, FieldLocation, LocationFacetSize)).
		Aggregate(DateHistogram(AggCreationDates, FieldCreatedAt, IntervalMonth, MonthFormat)).
		SortBy(ScoreField, OrderDesc).
		SortBy(FieldCreatedAt, OrderDesc).
		Paginate(page).
		TrackTotalHits()
}
