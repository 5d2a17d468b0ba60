package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/formkit/internal/render"
)

func renderCmd(a *app) *cobra.Command {
	var (
		outDir    string
		normalize bool
	)
	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Format currency values in HTML files ahead of time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("normalize-inputs") {
				normalize = a.cfg.Render.NormalizeInputs
			}
			rd := render.New(render.Options{
				Behavior:        a.opts,
				NormalizeInputs: normalize,
				Concurrency:     a.cfg.Render.Concurrency,
			})

			results, err := rd.RenderFiles(cmd.Context(), args, outDir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%s -> %s: %d/%d currency values, %d inputs normalized\n",
					r.Src, r.Dst, r.Stats.Formatted, r.Stats.Displays, r.Stats.Normalized)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "formkit-out", "directory for rendered files")
	cmd.Flags().BoolVar(&normalize, "normalize-inputs", false, "mask the initial values of amount and date fields")
	return cmd
}
