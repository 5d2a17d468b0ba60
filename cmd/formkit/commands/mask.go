package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rpgo/formkit/internal/behavior"
	"github.com/rpgo/formkit/internal/dom"
	"github.com/rpgo/formkit/pkg/dateutil"
	"github.com/rpgo/formkit/pkg/mask"
)

func maskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Apply the amount or date input mask",
	}
	cmd.AddCommand(amountMaskCmd(a), dateMaskCmd(a))
	return cmd
}

func amountMaskCmd(a *app) *cobra.Command {
	var keystrokes, parse bool
	cmd := &cobra.Command{
		Use:   "amount INPUT",
		Short: "Mask INPUT as a digit-grouped amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if parse {
				m, err := mask.ParseAmount(mask.Amount(args[0]))
				if err != nil {
					return fmt.Errorf("%q: %w", args[0], err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), m.String())
				return nil
			}
			if !keystrokes {
				fmt.Fprintln(cmd.OutOrStdout(), mask.Amount(args[0]))
				return nil
			}
			opts := a.opts
			opts.Selectors.AmountInput = "input"
			return replay(cmd.OutOrStdout(), behavior.AmountInput{}, opts, args[0])
		},
	}
	cmd.Flags().BoolVar(&keystrokes, "keystrokes", false, "type INPUT one character at a time and print every value")
	cmd.Flags().BoolVar(&parse, "parse", false, "print the masked amount as a plain decimal")
	cmd.MarkFlagsMutuallyExclusive("keystrokes", "parse")
	return cmd
}

func dateMaskCmd(a *app) *cobra.Command {
	var (
		keystrokes bool
		iso        bool
		overflow   string
	)
	cmd := &cobra.Command{
		Use:   "date INPUT",
		Short: "Mask INPUT as DD/MM/YYYY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.opts
			if cmd.Flags().Changed("overflow") {
				o, err := mask.ParseOverflow(overflow)
				if err != nil {
					return err
				}
				opts.DateOverflow = o
			}
			if iso {
				v, err := dateutil.ToISO(mask.Date(args[0], opts.DateOverflow))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}
			if !keystrokes {
				fmt.Fprintln(cmd.OutOrStdout(), mask.Date(args[0], opts.DateOverflow))
				return nil
			}
			opts.Selectors.DateInput = "input"
			return replay(cmd.OutOrStdout(), behavior.DateInput{}, opts, args[0])
		},
	}
	cmd.Flags().BoolVar(&keystrokes, "keystrokes", false, "type INPUT one character at a time and print every value")
	cmd.Flags().StringVar(&overflow, "overflow", "", "digits past a full date: truncate or retain")
	cmd.Flags().BoolVar(&iso, "iso", false, "print the masked date as yyyy-MM-dd; incomplete or invalid dates fail")
	cmd.MarkFlagsMutuallyExclusive("keystrokes", "iso")
	return cmd
}

// replay attaches b to a lone text field and types input into it.
func replay(w io.Writer, b behavior.Behavior, opts behavior.Options, input string) error {
	doc, err := dom.ParseString(`<input type="text">`)
	if err != nil {
		return err
	}
	dispose, err := b.Attach(doc, opts)
	if err != nil {
		return err
	}
	defer dispose()

	field, err := doc.Query("input")
	if err != nil {
		return err
	}
	for i, v := range dom.Type(field, input) {
		fmt.Fprintf(w, "%d\t%s\n", i+1, v)
	}
	return nil
}
