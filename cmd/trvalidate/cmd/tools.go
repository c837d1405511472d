package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/trvalidator/pkg/iban"
)

func newBankCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bank <code>",
		Short: "Look up the bank registered for a 5-digit bank code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := iban.BankName(args[0])
			if !ok {
				a.log.InfoContext(cmd.Context(), "unknown bank code", "code", args[0])
				return fmt.Errorf("unknown bank code %q", args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
}

func newCheckDigitCmd(a *app) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "checkdigit <bank-code> <reserve-digit> <account-number>",
		Short: "Compute IBAN check digits for a bank code and account number",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if full {
				built, err := iban.Build(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), iban.Format(built))
				return err
			}

			check, err := iban.CalculateCheckDigit(args[0], args[1], args[2])
			if err != nil {
				a.log.DebugContext(cmd.Context(), "check digit failed", "error", err)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), check)
			return err
		},
	}
	cmd.Flags().BoolVar(&full, "iban", false, "print the complete formatted IBAN instead of the check digits")
	return cmd
}
