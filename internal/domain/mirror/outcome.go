package mirror

// Status is the result of replicating one entity into the search index.
type Status string

// Mirror status values.
const (
	StatusSuccess            Status = "success"
	StatusSkippedUnavailable Status = "skipped_unavailable"
	StatusFailed             Status = "failed"
)

// Kind names the replicated entity.
type Kind string

// Replicated entity kinds.
const (
	KindJob         Kind = "job"
	KindApplication Kind = "application"
)

// Outcome is the result of mirroring one entity.
type Outcome struct {
	kind   Kind
	id     int64
	status Status
	err    error
}

// Success creates a successful outcome.
func Success(kind Kind, id int64) Outcome {
	return Outcome{kind: kind, id: id, status: StatusSuccess}
}

// Skipped creates an outcome for a write skipped because the index is disabled.
func Skipped(kind Kind, id int64) Outcome {
	return Outcome{kind: kind, id: id, status: StatusSkippedUnavailable}
}

// Failed creates a failed outcome.
func Failed(kind Kind, id int64, err error) Outcome {
	return Outcome{kind: kind, id: id, status: StatusFailed, err: err}
}

// Kind returns the entity kind.
func (o Outcome) Kind() Kind { return o.kind }

// ID returns the entity id.
func (o Outcome) ID() int64 { return o.id }

// Status returns the replication status.
func (o Outcome) Status() Status { return o.status }

// Err returns the failure cause, nil unless Status is StatusFailed.
func (o Outcome) Err() error { return o.err }

// OK reports whether the document reached the index.
func (o Outcome) OK() bool { return o.status == StatusSuccess }
