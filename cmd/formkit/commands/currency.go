package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/formkit/pkg/decimal"
)

func currencyCmd(a *app) *cobra.Command {
	var code bool
	cmd := &cobra.Command{
		Use:   "currency VALUE...",
		Short: "Format numbers as Brazilian Real",
		Long: "Format each VALUE the way currency display elements are rendered.\n" +
			"Values that are not numbers are printed unchanged.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range args {
				m, err := decimal.ParseLoose(v)
				if err != nil {
					a.log.Debugf("currency: %q left unchanged: %v", v, err)
					fmt.Fprintln(out, v)
					continue
				}
				if code {
					fmt.Fprintf(out, "%s\t%s\n", m.Format(), decimal.BRL.Code())
					continue
				}
				fmt.Fprintln(out, m.Format())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&code, "code", false, "append the ISO 4217 currency code")
	return cmd
}
