package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordMutation(t *testing.T) {
	before := testutil.ToFloat64(RecordsMutatedTotal.WithLabelValues("project", OpCreate))
	RecordMutation("project", OpCreate)
	after := testutil.ToFloat64(RecordsMutatedTotal.WithLabelValues("project", OpCreate))

	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestRecordReferentialWarning(t *testing.T) {
	before := testutil.ToFloat64(ReferentialWarningsTotal.WithLabelValues("process"))
	RecordReferentialWarning("process")
	RecordReferentialWarning("process")
	after := testutil.ToFloat64(ReferentialWarningsTotal.WithLabelValues("process"))

	if after-before != 2 {
		t.Errorf("expected counter to increase by 2, got %v", after-before)
	}
}
