package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestPageFromHref(t *testing.T) {
	cases := map[string]string{
		"?page=3":          "3",
		"?q=ana&page=7":    "7",
		"/demands/?page=2": "2",
		"page=4":           "4",
		"#":                "",
		"":                 "",
	}
	for href, want := range cases {
		assert.Equal(t, want, PageFromHref(href), "href %q", href)
	}
}

func TestWithPage(t *testing.T) {
	loc := mustURL(t, "https://intranet.local/leaves/?q=ana&status=open&page=1")
	assert.Equal(t, "/leaves/?page=5&q=ana&status=open", WithPage(loc, "5"))

	bare := mustURL(t, "/leaves/")
	assert.Equal(t, "/leaves/?page=2", WithPage(bare, "2"))
}

func TestWithSearch(t *testing.T) {
	loc := mustURL(t, "/demands/?page=3&status=open")

	assert.Equal(t, "/demands/?page=3&q=relat%C3%B3rio&status=open", WithSearch(loc, " relatório ", false))
	assert.Equal(t, "/demands/?q=ana&status=open", WithSearch(loc, "ana", true))

	withQ := mustURL(t, "/demands/?q=old&page=2")
	assert.Equal(t, "/demands/?page=2", WithSearch(withQ, "", false))
	assert.Equal(t, "/demands/?page=2", WithSearch(withQ, "   ", false))
}

func TestCurrentPage(t *testing.T) {
	assert.Equal(t, 1, CurrentPage(url.Values{}))
	assert.Equal(t, 1, CurrentPage(url.Values{"page": {"abc"}}))
	assert.Equal(t, 4, CurrentPage(url.Values{"page": {"4"}}))
}

func TestRange(t *testing.T) {
	tests := []struct {
		name             string
		total, size, cur int
		pages            []int
		before, after    bool
	}{
		{"fits entirely", 3, 3, 2, []int{1, 2, 3}, false, false},
		{"first page", 10, 3, 1, []int{1, 2, 3}, false, true},
		{"middle", 10, 3, 5, []int{4, 5, 6, 7}, true, true},
		{"last page", 10, 3, 10, []int{8, 9, 10}, true, false},
		{"past the end", 10, 3, 50, []int{8, 9, 10}, true, false},
		{"wider window", 20, 5, 10, []int{8, 9, 10, 11, 12, 13}, true, true},
		{"empty", 0, 3, 1, nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Range(tt.total, tt.size, tt.cur)
			assert.Equal(t, tt.pages, w.Pages)
			assert.Equal(t, tt.before, w.MoreBefore)
			assert.Equal(t, tt.after, w.MoreAfter)
			assert.Equal(t, tt.cur, w.Current)
		})
	}
}
