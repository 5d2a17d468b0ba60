package behavior

import (
	"github.com/rpgo/formkit/internal/dom"
	"github.com/rpgo/formkit/pkg/mask"
)

// DateInput inserts DD/MM/YYYY slashes into date fields on every input event.
type DateInput struct{}

func (DateInput) Name() string { return "date-input" }

func (DateInput) Attach(doc *dom.Document, opts Options) (Disposer, error) {
	overflow := opts.DateOverflow
	d, n, err := listenAll(doc, opts.Selectors.DateInput, dom.EventInput, func(el *dom.Element, _ *dom.Event) {
		el.SetValue(mask.Date(el.Value(), overflow))
	})
	if err != nil {
		return nil, err
	}
	opts.logger().Debugf("date-input: masking %d fields (overflow=%s)", n, overflow)
	return d, nil
}
