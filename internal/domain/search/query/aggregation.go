package query

// Aggregation is a named aggregation request.
type Aggregation interface {
	Name() string
	Source() map[string]any
}

// TermsAggregation buckets documents by distinct field values, top Size by count.
type TermsAggregation struct {
	name  string
	Field string
	Size  int
}

// Terms returns a terms aggregation.
func Terms(name, field string, size int) TermsAggregation {
	return TermsAggregation{name: name, Field: field, Size: size}
}

// Name implements Aggregation.
func (a TermsAggregation) Name() string { return a.name }

// Source implements Aggregation.
func (a TermsAggregation) Source() map[string]any {
	body := map[string]any{"field": a.Field}
	if a.Size > 0 {
		body["size"] = a.Size
	}
	return map[string]any{"terms": body}
}

// Calendar intervals for date histograms.
const (
	IntervalMonth = "month"
)

// DateHistogramAggregation buckets documents by calendar interval.
type DateHistogramAggregation struct {
	name     string
	Field    string
	Interval string
	Format   string
}

// DateHistogram returns a date_histogram aggregation.
func DateHistogram(name, field, interval, format string) DateHistogramAggregation {
	return DateHistogramAggregation{name: name, Field: field, Interval: interval, Format: format}
}

// Name implements Aggregation.
func (a DateHistogramAggregation) Name() string { return a.name }

// Source implements Aggregation.
func (a DateHistogramAggregation) Source() map[string]any {
	body := map[string]any{
		"field":             a.Field,
		"calendar_interval": a.Interval,
	}
	if a.Format != "" {
		body["format"] = a.Format
	}
	return map[string]any{"date_histogram": body}
}
