// Package pagination rewrites listing URLs for page and search navigation
// and computes the window of page links shown around the current page.
package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	// PageParam is the query parameter carrying the page number.
	PageParam = "page"
	// SearchParam is the query parameter carrying the search text.
	SearchParam = "q"
)

// PageFromHref extracts the target page of a pagination link. It prefers the
// link's page query parameter and falls back to whatever follows the first
// "=", which is how bare "?page=N" links were read.
func PageFromHref(href string) string {
	if u, err := url.Parse(href); err == nil {
		if p := u.Query().Get(PageParam); p != "" {
			return p
		}
	}
	_, after, ok := strings.Cut(href, "=")
	if !ok {
		return ""
	}
	after, _, _ = strings.Cut(after, "=")
	return after
}

// WithPage returns "path?query" for loc with the page parameter set and every
// other parameter kept.
func WithPage(loc *url.URL, page string) string {
	q := loc.Query()
	q.Set(PageParam, page)
	return join(loc.Path, q)
}

// WithSearch returns "path?query" for loc with q set to the trimmed query,
// or removed when it is blank. resetPage also drops the page parameter so a
// new search starts from the first page.
func WithSearch(loc *url.URL, query string, resetPage bool) string {
	q := loc.Query()
	if s := strings.TrimSpace(query); s != "" {
		q.Set(SearchParam, s)
	} else {
		q.Del(SearchParam)
	}
	if resetPage {
		q.Del(PageParam)
	}
	return join(loc.Path, q)
}

func join(path string, q url.Values) string {
	return path + "?" + q.Encode()
}

// CurrentPage reads the page parameter, defaulting to 1 when it is absent or
// not a number.
func CurrentPage(q url.Values) int {
	n, err := strconv.Atoi(q.Get(PageParam))
	if err != nil {
		return 1
	}
	return n
}

// Window is the slice of page numbers rendered as links.
type Window struct {
	Pages      []int
	Current    int
	Total      int
	Start      int
	Stop       int
	MoreBefore bool
	MoreAfter  bool
}

// Range centres a window of roughly size pages on current within 1..total.
// When every page fits in the window all of them are returned.
func Range(total, size, current int) Window {
	w := Window{Current: current, Total: total}
	if total <= 0 {
		return w
	}
	if size < 1 {
		size = 1
	}

	if total <= size {
		w.Start, w.Stop = 0, total
	} else {
		middle := int(math.Ceil(float64(size) / 2))
		w.Start = max(current-middle, 0)
		w.Stop = min(current+middle, total)
		if w.Stop-w.Start < size {
			w.Start = max(w.Stop-size, 0)
		}
	}

	for p := w.Start + 1; p <= w.Stop; p++ {
		w.Pages = append(w.Pages, p)
	}
	w.MoreBefore = w.Start > 0
	w.MoreAfter = w.Stop < total
	return w
}
