package upstream

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/lendwise/admin-console/internal/core/ports"
)

func TestLeadFilterQuery(t *testing.T) {
	f := ports.LeadFilter{
		Statuses: []string{"new", "contacted"},
		LoanType: "business",
		Search:   "acme",
		From:     "2026-01-01",
		To:       "2026-02-01",
	}

	q := LeadFilterQuery(f)

	if got := q["status"]; !reflect.DeepEqual(got, []string{"new", "contacted"}) {
		t.Fatalf("status values: %v", got)
	}
	if q.Get("loanType") != "business" || q.Get("search") != "acme" {
		t.Fatalf("scalar fields not set: %v", q)
	}
	if q.Get("startDate") != "2026-01-01" || q.Get("endDate") != "2026-02-01" {
		t.Fatalf("date range not mapped: %v", q)
	}
	if q.Has("source") {
		t.Fatalf("zero-value source must be omitted")
	}
}

func TestLeadFilterQuery_Empty(t *testing.T) {
	if q := LeadFilterQuery(ports.LeadFilter{}); len(q) != 0 {
		t.Fatalf("empty filter must produce no parameters, got %v", q)
	}
}

func TestWithQuery(t *testing.T) {
	if got := withQuery("/admin/leads", url.Values{}); got != "/admin/leads" {
		t.Fatalf("empty query must leave the path alone, got %q", got)
	}

	q := mergeQuery(pageQuery(ports.Page{Page: 2, Limit: 10}), url.Values{"status": {"new"}})
	got := withQuery("/admin/leads", q)
	if got != "/admin/leads?limit=10&page=2&status=new" {
		t.Fatalf("unexpected path %q", got)
	}
}
