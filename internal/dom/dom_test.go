package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><body>
<form id="f" action="/save">
  <input name="title" value="Férias">
  <input name="amount" class="formatted-currency-value" value="">
  <input type="checkbox" name="urgent">
  <input type="checkbox" name="paid" value="yes" checked>
  <input name="locked" value="x" disabled>
  <select name="kind"><option value="a">A</option><option value="b" selected>B</option></select>
  <textarea name="notes">hello</textarea>
  <button type="submit">Salvar</button>
</form>
<span class="valor-real" data-valor="1234.5">1234.5</span>
<div class="tabela-container" style="overflow-x: auto"><table><tr><td id="cell">x</td></tr></table></div>
</body></html>`

func parse(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(page)
	require.NoError(t, err)
	return doc
}

func TestQuery(t *testing.T) {
	doc := parse(t)

	spans, err := doc.QueryAll(".valor-real")
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, "span", spans[0].Tag())

	v, ok := spans[0].Data("valor")
	assert.True(t, ok)
	assert.Equal(t, "1234.5", v)

	again, err := doc.Query(".valor-real")
	require.NoError(t, err)
	assert.Same(t, spans[0], again, "elements must be stable across queries")

	none, err := doc.Query(".missing")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = doc.QueryAll("[[")
	assert.ErrorIs(t, err, ErrInvalidSelector)
}

func TestElementQueryExcludesSelf(t *testing.T) {
	doc := parse(t)
	form, err := doc.Query("form")
	require.NoError(t, err)

	forms, err := form.QueryAll("form")
	require.NoError(t, err)
	assert.Empty(t, forms)

	btn, err := form.Query("button[type=submit]")
	require.NoError(t, err)
	require.NotNil(t, btn)
	assert.Equal(t, "form", btn.Parent().Tag())
}

func TestTextAndValue(t *testing.T) {
	doc := parse(t)

	span, _ := doc.Query(".valor-real")
	span.SetText("R$ 1,00")
	assert.Equal(t, "R$ 1,00", span.Text())

	notes, _ := doc.Query("textarea")
	assert.Equal(t, "hello", notes.Value())
	notes.SetValue("bye")
	assert.Equal(t, "bye", notes.Value())

	sel, _ := doc.Query("select")
	assert.Equal(t, "b", sel.Value())
	sel.SetValue("a")
	assert.Equal(t, "a", sel.Value())

	in, _ := doc.Query("input[name=title]")
	assert.Equal(t, "Férias", in.Value())
	in.SetValue("Licença")
	assert.Contains(t, doc.String(), `value="Licença"`)
}

func TestStyleAndScroll(t *testing.T) {
	doc := parse(t)
	c, _ := doc.Query(".tabela-container")

	assert.Equal(t, "auto", c.Style("overflow-x"))
	c.SetStyle("cursor", "grab")
	c.SetStyle("cursor", "grabbing")
	assert.Equal(t, "grabbing", c.Style("cursor"))
	style, _ := c.Attr("style")
	assert.Equal(t, "overflow-x: auto; cursor: grabbing", style)

	c.SetScrollLeft(-5)
	assert.Equal(t, 0, c.ScrollLeft())
	c.SetScrollMax(100)
	c.SetScrollLeft(150)
	assert.Equal(t, 100, c.ScrollLeft())
}

func TestDispatchBubbles(t *testing.T) {
	doc := parse(t)
	form, _ := doc.Query("form")
	in, _ := doc.Query("input[name=title]")

	var got []string
	form.AddEventListener(EventInput, func(ev *Event) {
		got = append(got, "form:"+ev.Target.Tag()+">"+ev.CurrentTarget.Tag())
	})
	remove := in.AddEventListener(EventInput, func(ev *Event) {
		got = append(got, "input")
	})

	Input(in, "x")
	assert.Equal(t, []string{"input", "form:input>form"}, got)

	remove()
	remove() // second call is a no-op
	got = nil
	Input(in, "y")
	assert.Equal(t, []string{"form:input>form"}, got)
	assert.Equal(t, 0, in.ListenerCount(EventInput))
}

func TestMouseLeaveDoesNotBubble(t *testing.T) {
	doc := parse(t)
	container, _ := doc.Query(".tabela-container")
	cell, _ := doc.Query("#cell")

	fired := 0
	container.AddEventListener(EventMouseLeave, func(*Event) { fired++ })
	cell.Dispatch(NewMouseEvent(EventMouseLeave, 0))
	assert.Equal(t, 0, fired)

	container.AddEventListener(EventMouseMove, func(*Event) { fired++ })
	cell.Dispatch(NewMouseEvent(EventMouseMove, 10))
	assert.Equal(t, 1, fired)
}

func TestPreventDefault(t *testing.T) {
	doc := parse(t)
	form, _ := doc.Query("form")
	assert.True(t, Submit(form))

	form.AddEventListener(EventSubmit, func(ev *Event) { ev.PreventDefault() })
	assert.False(t, Submit(form))
}

func TestTypeAndBackspace(t *testing.T) {
	doc := parse(t)
	in, _ := doc.Query("input[name=amount]")

	seen := Type(in, "12")
	assert.Equal(t, []string{"1", "12"}, seen)
	assert.Equal(t, "1", Backspace(in))
	assert.Equal(t, "", Backspace(in))
	assert.Equal(t, "", Backspace(in))
}

func TestFormData(t *testing.T) {
	doc := parse(t)
	form, _ := doc.Query("form")

	want := []Field{
		{"title", "Férias"},
		{"amount", ""},
		{"paid", "yes"},
		{"kind", "b"},
		{"notes", "hello"},
	}
	initial := form.FormData()
	assert.Equal(t, want, initial)

	urgent, _ := doc.Query("input[name=urgent]")
	urgent.SetChecked(true)
	changed := form.FormData()
	assert.False(t, SameFormData(initial, changed))
	assert.Contains(t, changed, Field{"urgent", "on"})

	urgent.SetChecked(false)
	assert.True(t, SameFormData(initial, form.FormData()))
}

func TestNavigate(t *testing.T) {
	doc := parse(t)
	require.NoError(t, doc.SetLocation("https://example.com/demands/?page=2&q=x"))

	require.NoError(t, doc.Navigate("/demands/?page=3&q=x"))
	assert.Equal(t, "https://example.com/demands/?page=3&q=x", doc.Location().String())

	require.NoError(t, doc.Navigate("?page=4"))
	assert.Equal(t, "https://example.com/demands/?page=4", doc.Location().String())
	assert.Len(t, doc.History(), 2)

	loc := doc.Location()
	loc.Path = "/changed"
	assert.Equal(t, "/demands/", doc.Location().Path, "Location must return a copy")
}

func TestRenderKeepsStructure(t *testing.T) {
	doc := parse(t)
	out := doc.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `data-valor="1234.5"`)
	assert.NotNil(t, doc.Root())
	assert.Equal(t, "html", doc.Root().Tag())
}
