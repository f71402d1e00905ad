package ooxmlcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recallhq/recall/pkg/cliui"
	"github.com/recallhq/recall/pkg/ooxml"
)

const unpackShortDesc string = "Extract an OOXML document into a directory"

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <file> <dir>",
		Short: unpackShortDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runUnpack(args[0], args[1])
		},
	}
}

func runUnpack(file, dir string) error {
	if err := ooxml.Unpack(file, dir); err != nil {
		return fmt.Errorf("unpacking %s: %w", file, err)
	}

	fmt.Printf("  %s Unpacked into %s\n", cliui.SuccessMark, cliui.ValueStyle.Render(dir))
	return nil
}
