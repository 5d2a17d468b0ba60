package dom

// EventType names a DOM event.
type EventType string

const (
	EventInput      EventType = "input"
	EventClick      EventType = "click"
	EventSubmit     EventType = "submit"
	EventMouseDown  EventType = "mousedown"
	EventMouseMove  EventType = "mousemove"
	EventMouseUp    EventType = "mouseup"
	EventMouseLeave EventType = "mouseleave"
)

// Event is a dispatched event.
type Event struct {
	Type          EventType
	Target        *Element
	CurrentTarget *Element
	// PageX is the pointer's horizontal page coordinate for mouse events.
	PageX int

	bubbles          bool
	defaultPrevented bool
}

// NewEvent creates an event with the bubbling behavior browsers give its type.
func NewEvent(t EventType) *Event {
	return &Event{Type: t, bubbles: t != EventMouseLeave}
}

// NewMouseEvent creates a mouse event at the given page coordinate.
func NewMouseEvent(t EventType, pageX int) *Event {
	ev := NewEvent(t)
	ev.PageX = pageX
	return ev
}

// PreventDefault cancels the event's default action.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether a listener cancelled the default action.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// Listener handles a dispatched event.
type Listener func(*Event)

type listener struct {
	fn Listener
}

// AddEventListener registers fn for events of type t on e and returns a
// function that removes it again.
func (e *Element) AddEventListener(t EventType, fn Listener) (remove func()) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]*listener)
	}
	l := &listener{fn: fn}
	e.listeners[t] = append(e.listeners[t], l)
	return func() {
		ls := e.listeners[t]
		for i, x := range ls {
			if x == l {
				e.listeners[t] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns how many listeners of type t are registered on e.
func (e *Element) ListenerCount(t EventType) int {
	return len(e.listeners[t])
}

// Dispatch fires ev at e and, for bubbling events, at each ancestor. It
// returns false when a listener called PreventDefault.
func (e *Element) Dispatch(ev *Event) bool {
	if ev.Target == nil {
		ev.Target = e
	}
	for cur := e; cur != nil; cur = cur.Parent() {
		ev.CurrentTarget = cur
		// listeners added or removed during dispatch do not affect this round
		ls := append([]*listener(nil), cur.listeners[ev.Type]...)
		for _, l := range ls {
			l.fn(ev)
		}
		if !ev.bubbles {
			break
		}
	}
	return !ev.defaultPrevented
}

// Input sets a control's value and fires an input event, as a paste or
// autofill would.
func Input(el *Element, value string) {
	el.SetValue(value)
	el.Dispatch(NewEvent(EventInput))
}

// Type appends text one character at a time, firing an input event after
// each, and returns the value seen after every keystroke.
func Type(el *Element, text string) []string {
	var seen []string
	for _, r := range text {
		el.SetValue(el.Value() + string(r))
		el.Dispatch(NewEvent(EventInput))
		seen = append(seen, el.Value())
	}
	return seen
}

// Backspace deletes the last character and fires an input event.
func Backspace(el *Element) string {
	v := []rune(el.Value())
	if len(v) > 0 {
		v = v[:len(v)-1]
	}
	el.SetValue(string(v))
	el.Dispatch(NewEvent(EventInput))
	return el.Value()
}

// Click fires a click event; it returns false if the default was prevented.
func Click(el *Element) bool {
	return el.Dispatch(NewEvent(EventClick))
}

// Submit fires a submit event at a form; it returns false if the default
// was prevented.
func Submit(form *Element) bool {
	return form.Dispatch(NewEvent(EventSubmit))
}
