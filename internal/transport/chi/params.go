package chi

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ListJobsParams defines query parameters for GET /jobs.
type ListJobsParams struct {
	Keyword  *string
	Location *string
}

// SearchJobsParams defines query parameters for GET /jobs/search.
type SearchJobsParams struct {
	Keyword  *string
	Location *string
	DateFrom *string
	DateTo   *string
	Page     *int
	Limit    *int
}

// ListApplicationsParams defines query parameters for GET /applications.
type ListApplicationsParams struct {
	JobID *int64
	Page  *int
	Limit *int
}

// InvalidParamFormatError is returned when a parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

func bindQuery(q url.Values, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, q, dest); err != nil {
		return &InvalidParamFormatError{ParamName: name, Err: err}
	}
	return nil
}

// bindPaging binds page and limit leniently: a malformed value behaves as if absent
// so the usecase falls back to its default.
func bindPaging(q url.Values, name string) *int {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, q, &v); err != nil {
		return nil
	}
	return v
}

func bindJobID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, &InvalidParamFormatError{ParamName: "id", Err: err}
	}
	return id, nil
}

func bindListJobsParams(r *http.Request) (ListJobsParams, error) {
	var p ListJobsParams
	q := r.URL.Query()
	if err := bindQuery(q, "keyword", &p.Keyword); err != nil {
		return p, err
	}
	if err := bindQuery(q, "location", &p.Location); err != nil {
		return p, err
	}
	return p, nil
}

func bindSearchJobsParams(r *http.Request) (SearchJobsParams, error) {
	var p SearchJobsParams
	q := r.URL.Query()
	for name, dest := range map[string]**string{
		"keyword":  &p.Keyword,
		"location": &p.Location,
		"dateFrom": &p.DateFrom,
		"dateTo":   &p.DateTo,
	} {
		if err := bindQuery(q, name, dest); err != nil {
			return p, err
		}
	}
	p.Page = bindPaging(q, "page")
	p.Limit = bindPaging(q, "limit")
	return p, nil
}

func bindListApplicationsParams(r *http.Request) (ListApplicationsParams, error) {
	var p ListApplicationsParams
	q := r.URL.Query()
	if err := bindQuery(q, "job_id", &p.JobID); err != nil {
		return p, err
	}
	p.Page = bindPaging(q, "page")
	p.Limit = bindPaging(q, "limit")
	return p, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
