package reindex

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestReindexAllJobs_IndexesEveryJob(t *testing.T) {
	idx := newMemIndex()
	svc := newTestService(t, &mockLister{jobs: sampleJobs()}, idx, true)

	rep := svc.ReindexAllJobs(context.Background())

	if rep != (Report{Total: 3, Indexed: 3}) {
		t.Errorf("unexpected report: %+v", rep)
	}
	if len(idx.docs) != 3 {
		t.Errorf("expected 3 documents, got %d", len(idx.docs))
	}
	if idx.refreshes != 1 {
		t.Errorf("expected 1 refresh, got %d", idx.refreshes)
	}
}

func TestReindexAllJobs_Idempotent(t *testing.T) {
	idx := newMemIndex()
	svc := newTestService(t, &mockLister{jobs: sampleJobs()}, idx, true)

	first := svc.ReindexAllJobs(context.Background())
	second := svc.ReindexAllJobs(context.Background())

	if first != second {
		t.Errorf("reports differ: %+v vs %+v", first, second)
	}
	if idx.writes != 6 {
		t.Errorf("expected 6 writes, got %d", idx.writes)
	}
	if len(idx.docs) != 3 {
		t.Errorf("expected 3 documents after two passes, got %d", len(idx.docs))
	}
}

func TestReindexAllJobs_SkippedWhenUnavailable(t *testing.T) {
	idx := newMemIndex()
	svc := newTestService(t, &mockLister{jobs: sampleJobs()}, idx, false)

	rep := svc.ReindexAllJobs(context.Background())

	if !rep.Skipped || rep.Total != 0 {
		t.Errorf("unexpected report: %+v", rep)
	}
	if idx.writes != 0 || idx.refreshes != 0 {
		t.Error("no index calls expected while unavailable")
	}
}

func TestReindexAllJobs_ContinuesAfterFailure(t *testing.T) {
	idx := newMemIndex()
	idx.failIDs[2] = errors.New("version_conflict")
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_reindex_total"}, []string{"outcome"})
	svc := newTestService(t, &mockLister{jobs: sampleJobs()}, idx, true).WithDocumentCounter(counter)

	rep := svc.ReindexAllJobs(context.Background())

	if rep.Total != 3 || rep.Indexed != 2 || rep.Failed != 1 {
		t.Errorf("unexpected report: %+v", rep)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("indexed")); got != 2 {
		t.Errorf("expected 2 indexed, got %v", got)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("failed")); got != 1 {
		t.Errorf("expected 1 failed, got %v", got)
	}
	if idx.refreshes != 1 {
		t.Error("refresh must run after partial failure")
	}
}

func TestReindexAllJobs_ListErrorNotFatal(t *testing.T) {
	idx := newMemIndex()
	svc := newTestService(t, &mockLister{err: errors.New("db down")}, idx, true)

	rep := svc.ReindexAllJobs(context.Background())

	if rep != (Report{}) {
		t.Errorf("expected empty report, got %+v", rep)
	}
	if idx.refreshes != 0 {
		t.Error("refresh must not run without a listing")
	}
}

func TestReindexAllJobs_RefreshErrorNotFatal(t *testing.T) {
	idx := newMemIndex()
	idx.refreshErr = errors.New("index_not_found_exception")
	svc := newTestService(t, &mockLister{jobs: sampleJobs()}, idx, true)

	rep := svc.ReindexAllJobs(context.Background())
	if rep.Indexed != 3 {
		t.Errorf("unexpected report: %+v", rep)
	}
}

func TestReindexAllJobs_EmptyStore(t *testing.T) {
	idx := newMemIndex()
	svc := newTestService(t, &mockLister{}, idx, true)

	rep := svc.ReindexAllJobs(context.Background())
	if rep != (Report{}) || idx.refreshes != 1 {
		t.Errorf("unexpected report %+v refreshes %d", rep, idx.refreshes)
	}
}
