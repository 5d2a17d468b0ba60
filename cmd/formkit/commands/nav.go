package commands

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/formkit/internal/pagination"
)

func pageCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page URL N",
		Short: "Print URL switched to page N, keeping its other parameters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid URL %q: %w", args[0], err)
			}
			if n, err := strconv.Atoi(args[1]); err != nil || n < 1 {
				return fmt.Errorf("page must be a positive integer, got %q", args[1])
			}
			return printResolved(cmd, loc, pagination.WithPage(loc, args[1]))
		},
	}
	return cmd
}

func searchCmd(a *app) *cobra.Command {
	var resetPage bool
	cmd := &cobra.Command{
		Use:   "search URL QUERY",
		Short: "Print URL with its search parameter set to QUERY",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid URL %q: %w", args[0], err)
			}
			if !cmd.Flags().Changed("reset-page") {
				resetPage = a.opts.SearchResetPage
			}
			return printResolved(cmd, loc, pagination.WithSearch(loc, args[1], resetPage))
		},
	}
	cmd.Flags().BoolVar(&resetPage, "reset-page", false, "drop the page parameter")
	return cmd
}

// printResolved prints ref resolved against loc, so absolute inputs give
// absolute outputs.
func printResolved(cmd *cobra.Command, loc *url.URL, ref string) error {
	r, err := url.Parse(ref)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), loc.ResolveReference(r).String())
	return nil
}

func rangeCmd(a *app) *cobra.Command {
	var total, current, window int
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the page links shown around the current page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if total < 0 || window < 1 {
				return fmt.Errorf("--total must be >= 0 and --window >= 1")
			}
			w := pagination.Range(total, window, current)

			parts := make([]string, 0, len(w.Pages)+2)
			if w.MoreBefore {
				parts = append(parts, "...")
			}
			for _, p := range w.Pages {
				if p == w.Current {
					parts = append(parts, fmt.Sprintf("[%d]", p))
				} else {
					parts = append(parts, strconv.Itoa(p))
				}
			}
			if w.MoreAfter {
				parts = append(parts, "...")
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}
	cmd.Flags().IntVar(&total, "total", 0, "number of pages")
	cmd.Flags().IntVar(&current, "current", 1, "current page")
	cmd.Flags().IntVar(&window, "window", 4, "number of page links")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}
