package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterSearchMetrics_Idempotent(t *testing.T) {
	RegisterSearchMetrics()
	RegisterSearchMetrics() // second call must not panic on duplicate registration

	SearchRequestsTotal.WithLabelValues("hit").Inc()
	if v := testutil.ToFloat64(SearchRequestsTotal.WithLabelValues("hit")); v < 1 {
		t.Errorf("expected search_requests_total{hit} >= 1, got %f", v)
	}

	CatalogEntries.Set(8)
	if v := testutil.ToFloat64(CatalogEntries); v != 8 {
		t.Errorf("expected catalog_entries = 8, got %f", v)
	}
}
