package ooxmlcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/ooxml"
)

const packShortDesc string = "Build an OOXML document from a directory"

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <dir> <file>",
		Short: packShortDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPack(args[0], args[1])
		},
	}
}

func runPack(dir, outFile string) error {
	if err := ooxml.Pack(dir, outFile); err != nil {
		return fmt.Errorf("packing %s: %w", dir, err)
	}

	fmt.Printf("  %s Packed %s\n", cliui.SuccessMark, cliui.ValueStyle.Render(outFile))
	return nil
}
