package upstream

import (
	"net/url"
	"strconv"

	"github.com/lendwise/admin-console/internal/core/ports"
)

func pageQuery(p ports.Page) url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// LeadFilterQuery flattens a filter set into the query parameters shared by
// the lead list and export endpoints. Zero-value fields are omitted.
func LeadFilterQuery(f ports.LeadFilter) url.Values {
	q := url.Values{}
	for _, status := range f.Statuses {
		q.Add("status", status)
	}
	if f.LoanType != "" {
		q.Set("loanType", f.LoanType)
	}
	if f.Source != "" {
		q.Set("source", f.Source)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.From != "" {
		q.Set("startDate", f.From)
	}
	if f.To != "" {
		q.Set("endDate", f.To)
	}
	return q
}

func mergeQuery(qs ...url.Values) url.Values {
	out := url.Values{}
	for _, q := range qs {
		for key, vals := range q {
			for _, v := range vals {
				out.Add(key, v)
			}
		}
	}
	return out
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
