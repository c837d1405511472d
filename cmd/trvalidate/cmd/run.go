package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/trvalidator/pkg/logger"
)

// outcome is what a subcommand reports for one input.
type outcome struct {
	valid   bool
	summary string
	result  any
	err     error
	masked  slog.Attr
}

type checkFunc func(input string) outcome

// runChecks applies check to every input, logs verdicts and prints the records.
func (a *app) runChecks(cmd *cobra.Command, args []string, check checkFunc) error {
	inputs := args
	if len(inputs) == 0 {
		var err error
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	records := make([]record, 0, len(inputs))
	invalid := 0

	for _, in := range inputs {
		out := check(in)
		records = append(records, record{
			Input:   in,
			Result:  out.result,
			valid:   out.valid,
			summary: out.summary,
		})

		if out.valid {
			a.log.DebugContext(ctx, "input valid", out.masked, logger.Valid(true))
			continue
		}
		invalid++
		a.log.InfoContext(ctx, "input invalid", out.masked, logger.Valid(false), logger.Error(out.err))
	}

	if err := a.print(cmd.OutOrStdout(), records); err != nil {
		return err
	}

	if a.cfg.Strict && invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidInput, invalid, len(inputs))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
