package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/formkit/internal/behavior"
	"github.com/rpgo/formkit/internal/dom"
)

func attachCmd(a *app) *cobra.Command {
	var (
		location  string
		steps     []string
		names     []string
		printHTML bool
	)
	cmd := &cobra.Command{
		Use:   "attach FILE",
		Short: "Attach behaviors to an HTML page and replay user actions",
		Long: "Attach the configured behaviors to FILE, then run each --step in order.\n" +
			"Steps:\n" +
			"  type:SELECTOR=TEXT       type TEXT one character at a time\n" +
			"  input:SELECTOR=TEXT      replace the value at once, as a paste\n" +
			"  backspace:SELECTOR       delete the last character\n" +
			"  click:SELECTOR           click the element\n" +
			"  submit:SELECTOR          submit the form\n" +
			"  drag:SELECTOR=FROM,TO    press at page x FROM, move to TO, release\n" +
			"The last \"=\" separates the selector from its argument.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file %s: %w", args[0], err)
			}
			doc, err := dom.ParseString(string(data))
			if err != nil {
				return err
			}
			if location != "" {
				if err := doc.SetLocation(location); err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("behaviors") {
				names = a.cfg.Behaviors
			}
			dispose, err := behavior.AttachAll(doc, a.opts, names...)
			if err != nil {
				return err
			}
			defer dispose()
			untrace, err := trace.Attach(doc, a.opts)
			if err != nil {
				return err
			}
			defer untrace()

			out := cmd.OutOrStdout()
			for _, step := range steps {
				result, err := runStep(doc, step)
				if err != nil {
					return fmt.Errorf("step %q: %w", step, err)
				}
				fmt.Fprintf(out, "%s\t%s\n", step, result)
			}
			fmt.Fprintf(out, "location\t%s\n", doc.Location())
			if printHTML {
				return writeHTML(out, doc)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "URL the page is loaded from")
	cmd.Flags().StringArrayVar(&steps, "step", nil, "user action to replay (repeatable)")
	cmd.Flags().StringSliceVar(&names, "behaviors", nil, "behaviors to attach (default: config, or all)")
	cmd.Flags().BoolVar(&printHTML, "html", false, "print the page after the steps")
	return cmd
}

// trace logs every user event that reaches the document root.
var trace = behavior.Func{ID: "trace", F: func(doc *dom.Document, opts behavior.Options) (behavior.Disposer, error) {
	root := doc.Root()
	if root == nil || opts.Logger == nil {
		return func() {}, nil
	}
	var removes []func()
	for _, t := range []dom.EventType{dom.EventInput, dom.EventClick, dom.EventSubmit} {
		removes = append(removes, root.AddEventListener(t, func(ev *dom.Event) {
			opts.Logger.Debugf("%s on <%s>, default prevented: %t", ev.Type, ev.Target.Tag(), ev.DefaultPrevented())
		}))
	}
	return func() {
		for _, r := range removes {
			r()
		}
	}, nil
}}

func runStep(doc *dom.Document, step string) (string, error) {
	action, rest, ok := strings.Cut(step, ":")
	if !ok {
		return "", fmt.Errorf("missing action")
	}

	sel, arg := rest, ""
	switch action {
	case "type", "input", "drag":
		i := strings.LastIndex(rest, "=")
		if i < 0 {
			return "", fmt.Errorf("%s needs SELECTOR=ARGUMENT", action)
		}
		sel, arg = rest[:i], rest[i+1:]
	}

	el, err := doc.Query(sel)
	if err != nil {
		return "", err
	}
	if el == nil {
		return "", fmt.Errorf("no element matches %q", sel)
	}

	switch action {
	case "type":
		dom.Type(el, arg)
		return el.Value(), nil
	case "input":
		dom.Input(el, arg)
		return el.Value(), nil
	case "backspace":
		return dom.Backspace(el), nil
	case "click":
		return navigation(doc, dom.Click(el)), nil
	case "submit":
		return navigation(doc, dom.Submit(el)), nil
	case "drag":
		from, to, ok := strings.Cut(arg, ",")
		x0, err0 := strconv.Atoi(strings.TrimSpace(from))
		x1, err1 := strconv.Atoi(strings.TrimSpace(to))
		if !ok || err0 != nil || err1 != nil {
			return "", fmt.Errorf("drag needs FROM,TO page coordinates")
		}
		el.Dispatch(dom.NewMouseEvent(dom.EventMouseDown, x0))
		el.Dispatch(dom.NewMouseEvent(dom.EventMouseMove, x1))
		el.Dispatch(dom.NewMouseEvent(dom.EventMouseUp, x1))
		return strconv.Itoa(el.ScrollLeft()), nil
	default:
		return "", fmt.Errorf("unknown action %q", action)
	}
}

func navigation(doc *dom.Document, defaultAction bool) string {
	if defaultAction {
		return "default action"
	}
	return doc.Location().String()
}

func writeHTML(w io.Writer, doc *dom.Document) error {
	if err := doc.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
