package behavior

import (
	"github.com/rpgo/formkit/internal/dom"
	"github.com/rpgo/formkit/pkg/decimal"
	"github.com/rpgo/formkit/pkg/mask"
)

// CurrencyDisplay renders the numeric data attribute of display elements as
// Brazilian Real text, once, at attach time.
type CurrencyDisplay struct{}

func (CurrencyDisplay) Name() string { return "currency-display" }

func (CurrencyDisplay) Attach(doc *dom.Document, opts Options) (Disposer, error) {
	els, err := doc.QueryAll(opts.Selectors.CurrencyDisplay)
	if err != nil {
		return nil, err
	}
	formatted := 0
	for _, el := range els {
		if FormatDisplay(el, opts.dataAttr()) {
			formatted++
		} else {
			opts.logger().Debugf("currency-display: left <%s> unchanged, no numeric data-%s", el.Tag(), opts.dataAttr())
		}
	}
	opts.logger().Debugf("currency-display: formatted %d of %d elements", formatted, len(els))
	return noop, nil
}

// FormatDisplay sets el's text from its data-<attr> value and reports
// whether it did. Missing, empty or non-numeric values leave el untouched.
func FormatDisplay(el *dom.Element, attr string) bool {
	raw, ok := el.Data(attr)
	if !ok || raw == "" {
		return false
	}
	m, err := decimal.ParseLoose(raw)
	if err != nil {
		return false
	}
	el.SetText(m.Format())
	return true
}

// AmountInput reformats currency fields on every input event.
type AmountInput struct{}

func (AmountInput) Name() string { return "amount-input" }

func (AmountInput) Attach(doc *dom.Document, opts Options) (Disposer, error) {
	d, n, err := listenAll(doc, opts.Selectors.AmountInput, dom.EventInput, func(el *dom.Element, _ *dom.Event) {
		el.SetValue(mask.Amount(el.Value()))
	})
	if err != nil {
		return nil, err
	}
	opts.logger().Debugf("amount-input: masking %d fields", n)
	return d, nil
}
