package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/trvalidator/pkg/iban"
	"github.com/dmitrymomot/trvalidator/pkg/logger"
	"github.com/dmitrymomot/trvalidator/pkg/phone"
	"github.com/dmitrymomot/trvalidator/pkg/taxno"
	"github.com/dmitrymomot/trvalidator/pkg/tckn"
)

func newTCKNCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tckn [number...]",
		Short: "Validate T.C. identification numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChecks(cmd, args, func(in string) outcome {
				res := tckn.Validate(in)
				summary := "Geçerli T.C. kimlik numarası"
				if !res.IsValid {
					summary = res.Error
				}
				return outcome{
					valid:   res.IsValid,
					summary: summary,
					result:  res,
					err:     res.Err,
					masked:  logger.MaskedID("tckn", in),
				}
			})
		},
	}
}

func newPhoneCmd(a *app) *cobra.Command {
	var national bool

	cmd := &cobra.Command{
		Use:   "phone [number...]",
		Short: "Validate Turkish mobile phone numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChecks(cmd, args, func(in string) outcome {
				res := phone.Validate(in)
				summary := res.Message
				if res.Valid {
					formatted := res.Formatted
					if national {
						formatted = phone.FormatNational(in)
					}
					summary = formatted + " " + res.Operator
				}
				return outcome{
					valid:   res.Valid,
					summary: summary,
					result:  res,
					err:     res.Err,
					masked:  logger.MaskedPhone("phone", in),
				}
			})
		},
	}
	cmd.Flags().BoolVar(&national, "national", false, "print valid numbers in national notation (0532 123 45 67)")
	return cmd
}

func newTaxNoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "taxno [number...]",
		Short: "Validate Turkish tax identification numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChecks(cmd, args, func(in string) outcome {
				res := taxno.Validate(in)
				summary := res.Message
				if res.Valid {
					summary = res.Formatted
				}
				return outcome{
					valid:   res.Valid,
					summary: summary,
					result:  res,
					err:     res.Err,
					masked:  logger.MaskedID("tax_no", in),
				}
			})
		},
	}
}

func newIBANCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "iban [iban...]",
		Short: "Validate Turkish IBANs",
		Long: `Validate Turkish IBANs. Spaces and dashes are ignored, so quote grouped
IBANs or pass them on standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChecks(cmd, args, func(in string) outcome {
				res := iban.Validate(in)
				summary := res.Message
				if res.Valid {
					parts := []string{res.Formatted}
					if res.BankName != "" {
						parts = append(parts, res.BankName)
					} else {
						parts = append(parts, "banka kodu "+res.BankCode)
					}
					summary = strings.Join(parts, "\t")
				}
				return outcome{
					valid:   res.Valid,
					summary: summary,
					result:  res,
					err:     res.Err,
					masked:  logger.MaskedIBAN("iban", in),
				}
			})
		},
	}
}
