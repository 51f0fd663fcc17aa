// Package postgrestest provides in-memory pgx.Row and pgx.Rows values for repository tests.
package postgrestest

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Row is a single canned result row. Err, when set, is returned from Scan.
type Row struct {
	Values []any
	Err    error
}

var _ pgx.Row = Row{}

// Scan copies Values into dest positionally.
func (r Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return scanInto(r.Values, dest)
}

// Rows iterates over canned rows. Err is reported by Err after iteration.
type Rows struct {
	Data   [][]any
	Error  error
	idx    int
	closed bool
}

var _ pgx.Rows = (*Rows)(nil)

// NewRows creates a Rows value over data.
func NewRows(data ...[]any) *Rows {
	return &Rows{Data: data}
}

// Closed reports whether Close was called.
func (r *Rows) Closed() bool { return r.closed }

func (r *Rows) Close() { r.closed = true }

func (r *Rows) Err() error { return r.Error }

func (r *Rows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *Rows) Next() bool {
	if r.closed || r.idx >= len(r.Data) {
		r.closed = true
		return false
	}
	r.idx++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.Data) {
		return fmt.Errorf("scan called without a current row")
	}
	return scanInto(r.Data[r.idx-1], dest)
}

func (r *Rows) Values() ([]any, error) {
	if r.idx == 0 || r.idx > len(r.Data) {
		return nil, fmt.Errorf("no current row")
	}
	return r.Data[r.idx-1], nil
}

func (r *Rows) RawValues() [][]byte { return nil }

func (r *Rows) Conn() *pgx.Conn { return nil }

func scanInto(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		if values[i] == nil {
			dv.Elem().Set(reflect.Zero(dv.Elem().Type()))
			continue
		}
		sv := reflect.ValueOf(values[i])
		if !sv.Type().AssignableTo(dv.Elem().Type()) {
			if !sv.Type().ConvertibleTo(dv.Elem().Type()) {
				return fmt.Errorf("scan: cannot assign %s to %s", sv.Type(), dv.Elem().Type())
			}
			sv = sv.Convert(dv.Elem().Type())
		}
		dv.Elem().Set(sv)
	}
	return nil
}
