package dom

// Field is one name/value entry of a form's data set.
type Field struct {
	Name  string
	Value string
}

// FormData collects the successful controls of a form in document order:
// named, enabled inputs, selects and textareas, with checkboxes and radios
// only when checked. Buttons and file inputs are skipped.
func (e *Element) FormData() []Field {
	controls, _ := e.QueryAll("input, select, textarea")
	var out []Field
	for _, c := range controls {
		name, ok := c.Attr("name")
		if !ok || name == "" || c.Disabled() {
			continue
		}
		if c.Tag() == "input" {
			typ, _ := c.Attr("type")
			switch typ {
			case "submit", "button", "reset", "image", "file":
				continue
			case "checkbox", "radio":
				if !c.Checked() {
					continue
				}
				if _, has := c.Attr("value"); !has {
					out = append(out, Field{Name: name, Value: "on"})
					continue
				}
			}
		}
		out = append(out, Field{Name: name, Value: c.Value()})
	}
	return out
}

// SameFormData reports whether two data sets hold the same entries in the
// same order.
func SameFormData(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
