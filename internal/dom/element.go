package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element is an HTML element with browser-side state attached.
type Element struct {
	doc       *Document
	node      *html.Node
	listeners map[EventType][]*listener

	scrollLeft int
	scrollMax  int
	offsetLeft int
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.node.Data }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// Parent returns the nearest ancestor element, or nil at the root.
func (e *Element) Parent() *Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return e.doc.wrap(p)
		}
	}
	return nil
}

// QueryAll returns descendants matching selector.
func (e *Element) QueryAll(selector string) ([]*Element, error) {
	return e.doc.queryAll(e.node, selector)
}

// Query returns the first descendant matching selector, or nil.
func (e *Element) Query(selector string) (*Element, error) {
	els, err := e.QueryAll(selector)
	if err != nil || len(els) == 0 {
		return nil, err
	}
	return els[0], nil
}

// Attr returns the value of an attribute and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, adding it if missing.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(key string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

// Data returns a data-* attribute by its suffix: Data("valor") reads data-valor.
func (e *Element) Data(name string) (string, bool) {
	return e.Attr("data-" + name)
}

// HasClass reports whether the class attribute lists name.
func (e *Element) HasClass(name string) bool {
	v, _ := e.Attr("class")
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// Value returns the current value of a form control. Inputs read their
// value attribute, textareas their text and selects the selected option.
func (e *Element) Value() string {
	switch e.Tag() {
	case "textarea":
		return e.Text()
	case "select":
		if opt := e.selectedOption(); opt != nil {
			return opt.Value()
		}
		return ""
	case "option":
		if v, ok := e.Attr("value"); ok {
			return v
		}
		return strings.TrimSpace(e.Text())
	default:
		v, _ := e.Attr("value")
		return v
	}
}

// SetValue sets the current value of a form control.
func (e *Element) SetValue(v string) {
	switch e.Tag() {
	case "textarea":
		e.SetText(v)
	case "select":
		opts, _ := e.QueryAll("option")
		for _, o := range opts {
			if o.Value() == v {
				o.SetAttr("selected", "")
			} else {
				o.RemoveAttr("selected")
			}
		}
	default:
		e.SetAttr("value", v)
	}
}

func (e *Element) selectedOption() *Element {
	opts, _ := e.QueryAll("option")
	if len(opts) == 0 {
		return nil
	}
	for _, o := range opts {
		if _, ok := o.Attr("selected"); ok {
			return o
		}
	}
	return opts[0]
}

// Checked reports the checked state of a checkbox or radio input.
func (e *Element) Checked() bool {
	_, ok := e.Attr("checked")
	return ok
}

// SetChecked toggles the checked attribute.
func (e *Element) SetChecked(on bool) {
	if on {
		e.SetAttr("checked", "")
	} else {
		e.RemoveAttr("checked")
	}
}

// Disabled reports whether the disabled attribute is present.
func (e *Element) Disabled() bool {
	_, ok := e.Attr("disabled")
	return ok
}

// SetDisabled toggles the disabled attribute.
func (e *Element) SetDisabled(on bool) {
	if on {
		e.SetAttr("disabled", "")
	} else {
		e.RemoveAttr("disabled")
	}
}

// ScrollLeft returns the horizontal scroll offset.
func (e *Element) ScrollLeft() int { return e.scrollLeft }

// SetScrollLeft scrolls horizontally, clamped to [0, max] when a maximum
// has been set and to >= 0 otherwise.
func (e *Element) SetScrollLeft(x int) {
	if x < 0 {
		x = 0
	}
	if e.scrollMax > 0 && x > e.scrollMax {
		x = e.scrollMax
	}
	e.scrollLeft = x
}

// SetScrollMax sets the largest scroll offset (scrollWidth - clientWidth).
func (e *Element) SetScrollMax(limit int) { e.scrollMax = limit }

// OffsetLeft returns the element's left offset within the page.
func (e *Element) OffsetLeft() int { return e.offsetLeft }

// SetOffsetLeft positions the element horizontally within the page.
func (e *Element) SetOffsetLeft(x int) { e.offsetLeft = x }

// Style returns an inline style property.
func (e *Element) Style(prop string) string {
	for _, d := range e.styleDecls() {
		if d[0] == prop {
			return d[1]
		}
	}
	return ""
}

// SetStyle sets an inline style property, keeping the others in order.
func (e *Element) SetStyle(prop, val string) {
	decls := e.styleDecls()
	found := false
	for i, d := range decls {
		if d[0] == prop {
			decls[i][1] = val
			found = true
		}
	}
	if !found {
		decls = append(decls, [2]string{prop, val})
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d[0]+": "+d[1])
	}
	e.SetAttr("style", strings.Join(parts, "; "))
}

func (e *Element) styleDecls() [][2]string {
	raw, _ := e.Attr("style")
	var decls [][2]string
	for _, part := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, [2]string{strings.TrimSpace(strings.ToLower(k)), strings.TrimSpace(v)})
	}
	return decls
}
