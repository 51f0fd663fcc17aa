package search

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/kailas-cloud/jobboard/internal/domain/search/result"
)

// response is the subset of the engine response the reshaper reads.
// Every part is optional: missing sections reshape to empty values.
type response struct {
	Hits struct {
		Total json.RawMessage `json:"total"`
		Hits  []hit           `json:"hits"`
	} `json:"hits"`
	Aggregations map[string]aggregation `json:"aggregations"`
}

type hit struct {
	ID     string          `json:"_id"`
	Score  *float64        `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

type source struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

type aggregation struct {
	Buckets []bucket `json:"buckets"`
}

type bucket struct {
	Key         json.RawMessage `json:"key"`
	KeyAsString string          `json:"key_as_string"`
	DocCount    int64           `json:"doc_count"`
}

func parseResponse(raw []byte) (*response, error) {
	resp := &response{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(raw, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// total reads hits.total in object form ({"value": n}) or as a bare number.
func (r *response) total() int64 {
	raw := bytes.TrimSpace(r.Hits.Total)
	if len(raw) == 0 {
		return 0
	}

	var obj struct {
		Value int64 `json:"value"`
	}
	if raw[0] == '{' {
		if err := json.Unmarshal(raw, &obj); err == nil && obj.Value > 0 {
			return obj.Value
		}
		return 0
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
		return n
	}
	return 0
}

func (r *response) jobs() []result.Job {
	jobs := make([]result.Job, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		jobs = append(jobs, h.job())
	}
	return jobs
}

func (h hit) job() result.Job {
	var src source
	if len(h.Source) > 0 {
		dec := json.NewDecoder(bytes.NewReader(h.Source))
		dec.UseNumber()
		_ = dec.Decode(&src)
	}

	j := result.Job{
		Title:       src.Title,
		Description: src.Description,
		Location:    src.Location,
		CreatedAt:   parseTime(src.CreatedAt),
		UpdatedAt:   parseTime(src.UpdatedAt),
		Score:       h.Score,
	}
	if id, err := src.ID.Int64(); err == nil {
		j.ID = id
	} else if id, err := strconv.ParseInt(h.ID, 10, 64); err == nil {
		j.ID = id
	}
	return j
}

// buckets returns the named aggregation's buckets. Date histograms are keyed by
// key_as_string; terms aggregations by key.
func (r *response) buckets(name string, byString bool) []result.Bucket {
	agg, ok := r.Aggregations[name]
	if !ok {
		return []result.Bucket{}
	}

	out := make([]result.Bucket, 0, len(agg.Buckets))
	for _, b := range agg.Buckets {
		value := b.KeyAsString
		if !byString || value == "" {
			value = keyString(b.Key)
		}
		out = append(out, result.Bucket{Value: value, Count: b.DocCount})
	}
	return out
}

func keyString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
