package behavior

import (
	"github.com/rpgo/formkit/internal/dom"
)

const (
	cursorGrab     = "grab"
	cursorGrabbing = "grabbing"
)

// DragScroll lets wide tables be scrolled horizontally by dragging.
// Every container keeps its own drag state.
type DragScroll struct{}

func (DragScroll) Name() string { return "drag-scroll" }

type dragState struct {
	down       bool
	startX     int
	scrollLeft int
}

func (DragScroll) Attach(doc *dom.Document, opts Options) (Disposer, error) {
	containers, err := doc.QueryAll(opts.Selectors.DragContainer)
	if err != nil {
		return nil, err
	}
	sensitivity := opts.sensitivity()

	var ds []Disposer
	for _, c := range containers {
		ds = append(ds, attachDrag(c, sensitivity))
	}
	opts.logger().Debugf("drag-scroll: %d containers", len(containers))
	return combine(ds), nil
}

func attachDrag(c *dom.Element, sensitivity int) Disposer {
	st := &dragState{}
	release := func(*dom.Event) {
		st.down = false
		c.SetStyle("cursor", cursorGrab)
	}

	return combine([]Disposer{
		c.AddEventListener(dom.EventMouseDown, func(ev *dom.Event) {
			st.down = true
			st.startX = ev.PageX - c.OffsetLeft()
			st.scrollLeft = c.ScrollLeft()
			c.SetStyle("cursor", cursorGrabbing)
			ev.PreventDefault() // no text selection while dragging
		}),
		c.AddEventListener(dom.EventMouseLeave, release),
		c.AddEventListener(dom.EventMouseUp, release),
		c.AddEventListener(dom.EventMouseMove, func(ev *dom.Event) {
			if !st.down {
				return
			}
			ev.PreventDefault()
			x := ev.PageX - c.OffsetLeft()
			walk := (x - st.startX) * sensitivity
			c.SetScrollLeft(st.scrollLeft - walk)
		}),
	})
}
