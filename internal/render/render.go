// Package render applies the load-time behaviors to HTML pages ahead of
// time, so a page is served with its currency values already formatted.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpgo/formkit/internal/behavior"
	"github.com/rpgo/formkit/internal/dom"
	"github.com/rpgo/formkit/pkg/dateutil"
	"github.com/rpgo/formkit/pkg/decimal"
	"github.com/rpgo/formkit/pkg/mask"
	"golang.org/x/sync/errgroup"
)

// Options configures a Renderer.
type Options struct {
	Behavior behavior.Options
	// NormalizeInputs masks the initial values of amount and date fields.
	NormalizeInputs bool
	// Concurrency bounds how many files RenderFiles processes at once.
	Concurrency int
}

// Renderer rewrites HTML pages.
type Renderer struct {
	opts Options
	log  behavior.Logger
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	log := opts.Behavior.Logger
	if log == nil {
		log = behavior.NopLogger{}
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Renderer{opts: opts, log: log}
}

// Stats counts what a render pass changed.
type Stats struct {
	Displays    int
	Formatted   int
	AmountsSeen int
	DatesSeen   int
	Normalized  int
}

// Render reads one HTML document from r and writes the processed document
// to w.
func (rd *Renderer) Render(r io.Reader, w io.Writer) (Stats, error) {
	doc, err := dom.Parse(r)
	if err != nil {
		return Stats{}, err
	}
	st, err := rd.Apply(doc)
	if err != nil {
		return st, err
	}
	if err := doc.Render(w); err != nil {
		return st, fmt.Errorf("failed to write HTML: %w", err)
	}
	return st, nil
}

// Apply runs the load-time behaviors over doc in place.
func (rd *Renderer) Apply(doc *dom.Document) (Stats, error) {
	var st Stats
	sel := rd.opts.Behavior.Selectors
	attr := rd.opts.Behavior.DataAttr
	if attr == "" {
		attr = behavior.DefaultDataAttr
	}

	displays, err := doc.QueryAll(sel.CurrencyDisplay)
	if err != nil {
		return st, err
	}
	st.Displays = len(displays)
	for _, el := range displays {
		if behavior.FormatDisplay(el, attr) {
			st.Formatted++
		}
	}

	amounts, err := doc.QueryAll(sel.AmountInput)
	if err != nil {
		return st, err
	}
	st.AmountsSeen = len(amounts)
	dates, err := doc.QueryAll(sel.DateInput)
	if err != nil {
		return st, err
	}
	st.DatesSeen = len(dates)

	if rd.opts.NormalizeInputs {
		for _, el := range amounts {
			if v := el.Value(); v != "" {
				if nv := NormalizeAmount(v); nv != v {
					el.SetValue(nv)
					st.Normalized++
				}
			}
		}
		for _, el := range dates {
			if v := el.Value(); v != "" {
				if nv := NormalizeDate(v, rd.opts.Behavior.DateOverflow); nv != v {
					el.SetValue(nv)
					st.Normalized++
				}
			}
		}
	}
	return st, nil
}

// NormalizeAmount rewrites a server-side value for an amount field. Plain
// decimals ("1234.5") are read as numbers; anything else goes through the
// amount mask as if typed.
func NormalizeAmount(v string) string {
	if m, err := decimal.NewMoneyFromString(strings.TrimSpace(v)); err == nil && !m.IsNegative() {
		return mask.Amount(m.String())
	}
	return mask.Amount(v)
}

// NormalizeDate rewrites a server-side value for a date field. ISO dates
// ("2024-02-01") are converted; anything else goes through the date mask.
func NormalizeDate(v string, o mask.Overflow) string {
	if br, err := dateutil.FromISO(strings.TrimSpace(v)); err == nil {
		return br
	}
	return mask.Date(v, o)
}

// RenderFile processes the HTML file at src and writes it to dst.
func (rd *Renderer) RenderFile(src, dst string) (Stats, error) {
	in, err := os.ReadFile(src)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read file %s: %w", src, err)
	}
	var out bytes.Buffer
	st, err := rd.Render(bytes.NewReader(in), &out)
	if err != nil {
		return st, fmt.Errorf("%s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return st, err
	}
	if err := os.WriteFile(dst, out.Bytes(), 0o644); err != nil {
		return st, fmt.Errorf("failed to write file %s: %w", dst, err)
	}
	rd.log.Infof("rendered %s -> %s (%d/%d currency values, %d inputs normalized)", src, dst, st.Formatted, st.Displays, st.Normalized)
	return st, nil
}

// Result is the outcome of one file in a batch.
type Result struct {
	Src   string
	Dst   string
	Stats Stats
}

// RenderFiles renders every file into outDir, keeping base names, with at
// most Concurrency files in flight. The first error cancels the rest. Two
// sources sharing a base name, or a source that would be overwritten, are
// rejected before anything is written.
func (rd *Renderer) RenderFiles(ctx context.Context, files []string, outDir string) ([]Result, error) {
	dsts, err := destinations(files, outDir)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rd.opts.Concurrency)

	for i, src := range files {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := rd.RenderFile(src, dsts[i])
			if err != nil {
				return err
			}
			results[i] = Result{Src: src, Dst: dsts[i], Stats: st}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func destinations(files []string, outDir string) ([]string, error) {
	dsts := make([]string, len(files))
	seen := make(map[string]string, len(files))
	for i, src := range files {
		dst := filepath.Join(outDir, filepath.Base(src))
		if filepath.Clean(dst) == filepath.Clean(src) {
			return nil, fmt.Errorf("refusing to overwrite %s in place", src)
		}
		if prev, ok := seen[dst]; ok {
			return nil, fmt.Errorf("%s and %s would both be written to %s", prev, src, dst)
		}
		seen[dst] = src
		dsts[i] = dst
	}
	return dsts, nil
}
