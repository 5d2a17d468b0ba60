package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/formkit/internal/behavior"
	"github.com/rpgo/formkit/pkg/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nbsp = "\u00a0"

const page = `<!DOCTYPE html>
<html><body>
<span class="currency-value" data-valor="1234.5">1234.5</span>
<span class="currency-value" data-valor="x">x</span>
<form>
  <input name="amount" class="formatted-currency-value" value="1234.5">
  <input name="fee" class="formatted-currency-value" value="">
  <input name="due" class="date-input" value="2024-02-01">
  <input name="paid" class="date-input" value="15032024">
</form>
</body></html>`

func TestRender_FormatsDisplays(t *testing.T) {
	rd := New(Options{Behavior: behavior.DefaultOptions()})

	var out strings.Builder
	st, err := rd.Render(strings.NewReader(page), &out)
	require.NoError(t, err)

	assert.Equal(t, 2, st.Displays)
	assert.Equal(t, 1, st.Formatted)
	assert.Equal(t, 2, st.AmountsSeen)
	assert.Equal(t, 2, st.DatesSeen)
	assert.Equal(t, 0, st.Normalized)
	assert.Contains(t, out.String(), ">R$"+nbsp+"1.234,50</span>")
	assert.Contains(t, out.String(), `data-valor="x">x</span>`)
	assert.Contains(t, out.String(), `value="2024-02-01"`, "inputs untouched without normalization")
}

func TestRender_NormalizeInputs(t *testing.T) {
	rd := New(Options{Behavior: behavior.DefaultOptions(), NormalizeInputs: true})

	var out strings.Builder
	st, err := rd.Render(strings.NewReader(page), &out)
	require.NoError(t, err)

	assert.Equal(t, 3, st.Normalized)
	html := out.String()
	assert.Contains(t, html, `value="1.234,50"`)
	assert.Contains(t, html, `value="01/02/2024"`)
	assert.Contains(t, html, `value="15/03/2024"`)
}

func TestRender_BadSelector(t *testing.T) {
	opts := behavior.DefaultOptions()
	opts.Selectors.CurrencyDisplay = "[["
	_, err := New(Options{Behavior: opts}).Render(strings.NewReader(page), &strings.Builder{})
	assert.Error(t, err)
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1234.5", "1.234,50"},
		{"12", "12,00"},
		{"0.005", "0,01"},
		{"1.234,56", "1.234,56"},
		{"R$ 9,90", "9,90"},
		{"-3.5", "0,35"},
		{"abc", ""},
		{"1e-300000000", "13.000.000,00"},
		{"1e999999999", "19.999.999,99"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAmount(tt.in))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "29/02/2024", NormalizeDate("2024-02-29", mask.Truncate))
	assert.Equal(t, "20/23/0230", NormalizeDate("2023-02-30", mask.Truncate), "invalid ISO dates fall back to the mask")
	assert.Equal(t, "01/02/2024", NormalizeDate("01/02/2024", mask.Truncate))
	assert.Equal(t, "01/02/20249", NormalizeDate("010220249", mask.Retain))
}

func TestRenderFiles(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	var files []string
	for _, name := range []string{"a.html", "b.html", "c.html"} {
		p := filepath.Join(src, name)
		require.NoError(t, os.WriteFile(p, []byte(page), 0o644))
		files = append(files, p)
	}

	rd := New(Options{Behavior: behavior.DefaultOptions(), Concurrency: 2})
	results, err := rd.RenderFiles(context.Background(), files, out)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, files[i], r.Src)
		assert.Equal(t, 1, r.Stats.Formatted)
		data, err := os.ReadFile(r.Dst)
		require.NoError(t, err)
		assert.Contains(t, string(data), "R$"+nbsp+"1.234,50")
	}
}

func TestRenderFiles_MissingFile(t *testing.T) {
	rd := New(Options{Behavior: behavior.DefaultOptions()})
	_, err := rd.RenderFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing.html")}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestRenderFiles_RefusesInPlace(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.html")
	require.NoError(t, os.WriteFile(p, []byte(page), 0o644))

	_, err := New(Options{Behavior: behavior.DefaultOptions()}).RenderFiles(context.Background(), []string{p}, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in place")
}

func TestRenderFiles_SameBaseName(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "out")
	var files []string
	for _, dir := range []string{"a", "b"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
		p := filepath.Join(root, dir, "list.html")
		require.NoError(t, os.WriteFile(p, []byte(page), 0o644))
		files = append(files, p)
	}

	_, err := New(Options{Behavior: behavior.DefaultOptions(), Concurrency: 2}).RenderFiles(context.Background(), files, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would both be written to")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "nothing is written when destinations collide")
}

func TestRender_HugeExponentIsBounded(t *testing.T) {
	src := `<span class="currency-value" data-valor="1e-300000000">x</span>` +
		`<span class="currency-value" data-valor="-1e-300000000">y</span>` +
		`<input class="formatted-currency-value" value="1e999999999">`
	var out strings.Builder
	st, err := New(Options{Behavior: behavior.DefaultOptions(), NormalizeInputs: true}).Render(strings.NewReader(src), &out)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Formatted)
	assert.Contains(t, out.String(), ">R$"+nbsp+"0,00</span>")
	assert.Contains(t, out.String(), ">-R$"+nbsp+"0,00</span>")
	assert.Contains(t, out.String(), `value="19.999.999,99"`)
}
