package ooxmlcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/ooxml"
)

const ooxmlValidateShortDesc string = "Check XML parts for well-formedness"

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: ooxmlValidateShortDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(file string) error {
	findings, err := ooxml.Validate(file)
	if err != nil {
		return fmt.Errorf("validating %s: %w", file, err)
	}

	if len(findings) == 0 {
		fmt.Printf("  %s All XML parts are well-formed\n", cliui.SuccessMark)
		return nil
	}

	for _, f := range findings {
		fmt.Printf("  %s %s: %s\n", cliui.FailMark, cliui.KeyStyle.Render(f.Part), f.Message)
	}
	return fmt.Errorf("%d validation findings in %s", len(findings), file)
}
