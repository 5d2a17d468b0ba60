package behavior

import (
	"github.com/rpgo/formkit/internal/dom"
)

// DirtyForm keeps a form's submit button disabled until some field differs
// from the value it had at attach time.
type DirtyForm struct{}

func (DirtyForm) Name() string { return "dirty-form" }

func (DirtyForm) Attach(doc *dom.Document, opts Options) (Disposer, error) {
	forms, err := doc.QueryAll(opts.Selectors.DirtyForm)
	if err != nil {
		return nil, err
	}

	var ds []Disposer
	for _, form := range forms {
		btn, err := form.Query(opts.Selectors.SubmitButton)
		if err != nil {
			combine(ds)()
			return nil, err
		}
		if btn == nil {
			opts.logger().Debugf("dirty-form: form without %q skipped", opts.Selectors.SubmitButton)
			continue
		}
		ds = append(ds, guardForm(form, btn))
	}
	return combine(ds), nil
}

func guardForm(form, btn *dom.Element) Disposer {
	initial := form.FormData()
	btn.SetDisabled(true)

	remove := form.AddEventListener(dom.EventInput, func(*dom.Event) {
		btn.SetDisabled(dom.SameFormData(initial, form.FormData()))
	})
	return func() {
		remove()
		btn.SetDisabled(false)
	}
}
