package behavior

import (
	"github.com/rpgo/formkit/internal/dom"
	"github.com/rpgo/formkit/internal/pagination"
)

// PageLinks turns pagination links into in-place navigations that keep the
// current query parameters.
type PageLinks struct{}

func (PageLinks) Name() string { return "page-links" }

func (PageLinks) Attach(doc *dom.Document, opts Options) (Disposer, error) {
	log := opts.logger()
	d, _, err := listenAll(doc, opts.Selectors.PageLink, dom.EventClick, func(el *dom.Element, ev *dom.Event) {
		ev.PreventDefault()
		href, _ := el.Attr("href")
		page := pagination.PageFromHref(href)
		if page == "" {
			log.Warnf("page-links: no page number in href %q", href)
			return
		}
		if err := doc.Navigate(pagination.WithPage(doc.Location(), page)); err != nil {
			log.Errorf("page-links: %v", err)
		}
	})
	return d, err
}

// SearchForm submits the search box by rewriting the q parameter of the
// current URL instead of posting the form.
type SearchForm struct{}

func (SearchForm) Name() string { return "search-form" }

func (SearchForm) Attach(doc *dom.Document, opts Options) (Disposer, error) {
	log := opts.logger()
	field := opts.Selectors.SearchField
	d, _, err := listenAll(doc, opts.Selectors.SearchForm, dom.EventSubmit, func(form *dom.Element, ev *dom.Event) {
		ev.PreventDefault()
		query := ""
		in, err := form.Query(field)
		if err != nil {
			log.Errorf("search-form: %v", err)
			return
		}
		if in != nil {
			query = in.Value()
		}
		if err := doc.Navigate(pagination.WithSearch(doc.Location(), query, opts.SearchResetPage)); err != nil {
			log.Errorf("search-form: %v", err)
		}
	})
	return d, err
}
