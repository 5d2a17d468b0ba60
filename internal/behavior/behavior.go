// Package behavior attaches form-page UI behaviors to a dom.Document.
//
// Each behavior queries its targets once at attach time and returns a
// Disposer that removes every listener it registered. Behaviors are
// independent of one another and hold no state outside the elements they
// were attached to.
package behavior

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/formkit/internal/dom"
	"github.com/rpgo/formkit/pkg/mask"
)

// ErrUnknownBehavior is returned when a behavior name is not registered.
var ErrUnknownBehavior = errors.New("unknown behavior")

// Disposer detaches a behavior. Calling it more than once is harmless.
type Disposer func()

func noop() {}

// combine returns a Disposer running every d in reverse order.
func combine(ds []Disposer) Disposer {
	return func() {
		for i := len(ds) - 1; i >= 0; i-- {
			ds[i]()
		}
	}
}

// Selectors locates the targets of each behavior.
type Selectors struct {
	CurrencyDisplay string `yaml:"currency_display"`
	AmountInput     string `yaml:"amount_input"`
	DateInput       string `yaml:"date_input"`
	DragContainer   string `yaml:"drag_container"`
	PageLink        string `yaml:"page_link"`
	SearchForm      string `yaml:"search_form"`
	SearchField     string `yaml:"search_field"`
	DirtyForm       string `yaml:"dirty_form"`
	SubmitButton    string `yaml:"submit_button"`
}

// EnglishSelectors are the class markers used by the English page templates.
var EnglishSelectors = Selectors{
	CurrencyDisplay: ".currency-value",
	AmountInput:     ".formatted-currency-value",
	DateInput:       ".date-input",
	DragContainer:   ".draggable-table",
	PageLink:        ".page-link",
	SearchForm:      "#searchForm",
	SearchField:     "input[name='q']",
	DirtyForm:       "form",
	SubmitButton:    "button[type=submit]",
}

// PortugueseSelectors are the class markers used by the Portuguese page
// templates.
var PortugueseSelectors = Selectors{
	CurrencyDisplay: ".valor-real",
	AmountInput:     ".formatted-currency-value",
	DateInput:       ".date-input",
	DragContainer:   ".tabela-container",
	PageLink:        ".page-link",
	SearchForm:      "#searchForm",
	SearchField:     "input[name='q']",
	DirtyForm:       "form",
	SubmitButton:    "button[type=submit]",
}

// Merge returns s with every empty field taken from base.
func (s Selectors) Merge(base Selectors) Selectors {
	pick := func(v, d string) string {
		if strings.TrimSpace(v) == "" {
			return d
		}
		return v
	}
	return Selectors{
		CurrencyDisplay: pick(s.CurrencyDisplay, base.CurrencyDisplay),
		AmountInput:     pick(s.AmountInput, base.AmountInput),
		DateInput:       pick(s.DateInput, base.DateInput),
		DragContainer:   pick(s.DragContainer, base.DragContainer),
		PageLink:        pick(s.PageLink, base.PageLink),
		SearchForm:      pick(s.SearchForm, base.SearchForm),
		SearchField:     pick(s.SearchField, base.SearchField),
		DirtyForm:       pick(s.DirtyForm, base.DirtyForm),
		SubmitButton:    pick(s.SubmitButton, base.SubmitButton),
	}
}

// DefaultDataAttr is the data-* suffix holding a display element's value.
const DefaultDataAttr = "valor"

// DefaultDragSensitivity multiplies pointer travel into scroll distance.
const DefaultDragSensitivity = 2

// Options configures every behavior.
type Options struct {
	Selectors       Selectors
	DataAttr        string
	DateOverflow    mask.Overflow
	DragSensitivity int
	SearchResetPage bool
	Logger          Logger
}

// DefaultOptions returns options for the English templates.
func DefaultOptions() Options {
	return Options{
		Selectors:       EnglishSelectors,
		DataAttr:        DefaultDataAttr,
		DateOverflow:    mask.Truncate,
		DragSensitivity: DefaultDragSensitivity,
		Logger:          NopLogger{},
	}
}

func (o Options) logger() Logger {
	if o.Logger == nil {
		return NopLogger{}
	}
	return o.Logger
}

func (o Options) dataAttr() string {
	if o.DataAttr == "" {
		return DefaultDataAttr
	}
	return o.DataAttr
}

func (o Options) sensitivity() int {
	if o.DragSensitivity == 0 {
		return DefaultDragSensitivity
	}
	return o.DragSensitivity
}

// Behavior is a UI behavior that can be attached to a document.
type Behavior interface {
	Attach(doc *dom.Document, opts Options) (Disposer, error)
	// Name returns a short identifier used in configuration and logs.
	Name() string
}

// Func adapts an ordinary function to a Behavior.
type Func struct {
	ID string
	F  func(*dom.Document, Options) (Disposer, error)
}

func (f Func) Attach(doc *dom.Document, opts Options) (Disposer, error) { return f.F(doc, opts) }
func (f Func) Name() string                                             { return f.ID }

// builtIn lists the registered behaviors in attach order.
var builtIn = []Behavior{
	CurrencyDisplay{},
	AmountInput{},
	DateInput{},
	DragScroll{},
	DirtyForm{},
	PageLinks{},
	SearchForm{},
}

// ByName fetches a registered behavior.
func ByName(name string) (Behavior, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, b := range builtIn {
		if b.Name() == n {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s", ErrUnknownBehavior, name, strings.Join(Names(), ", "))
}

// Names lists the registered behavior names.
func Names() []string {
	out := make([]string, 0, len(builtIn))
	for _, b := range builtIn {
		out = append(out, b.Name())
	}
	return out
}

// AttachAll attaches the named behaviors, or every registered behavior when
// names is empty. On error, behaviors already attached are disposed.
func AttachAll(doc *dom.Document, opts Options, names ...string) (Disposer, error) {
	if len(names) == 0 {
		names = Names()
	}
	var ds []Disposer
	for _, name := range names {
		b, err := ByName(name)
		if err != nil {
			combine(ds)()
			return nil, err
		}
		d, err := b.Attach(doc, opts)
		if err != nil {
			combine(ds)()
			return nil, fmt.Errorf("attach %s: %w", b.Name(), err)
		}
		ds = append(ds, d)
	}
	opts.logger().Debugf("attached %d behaviors: %s", len(ds), strings.Join(names, ", "))
	return combine(ds), nil
}

// listenAll registers fn on every element matching selector and returns a
// Disposer removing those listeners.
func listenAll(doc *dom.Document, selector string, t dom.EventType, fn func(el *dom.Element, ev *dom.Event)) (Disposer, int, error) {
	els, err := doc.QueryAll(selector)
	if err != nil {
		return nil, 0, err
	}
	ds := make([]Disposer, 0, len(els))
	for _, el := range els {
		el := el
		ds = append(ds, el.AddEventListener(t, func(ev *dom.Event) { fn(el, ev) }))
	}
	return combine(ds), len(els), nil
}
