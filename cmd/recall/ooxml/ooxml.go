// Package ooxmlcmder provides commands for working with Office Open XML
// files: unpacking them for editing, packing them back, and validating
// their XML parts.
package ooxmlcmder

import (
	"github.com/spf13/cobra"
)

const ooxmlLongDesc string = `Work with Office Open XML files (.docx, .xlsx, .pptx).

OOXML files are zip archives of XML parts. Unpack one to edit its
parts as plain files, pack a directory back into a document, and
validate that every XML part is well-formed.

Subcommands:
  recall ooxml unpack <file> <dir>    Extract a document into a directory
  recall ooxml pack <dir> <file>      Build a document from a directory
  recall ooxml validate <file>        Check XML parts for well-formedness

Examples:
  recall ooxml unpack report.docx ./report
  recall ooxml pack ./report report.docx
  recall ooxml validate report.docx`

const ooxmlShortDesc string = "Pack, unpack, and validate OOXML files"

func NewOoxmlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ooxml",
		Short: ooxmlShortDesc,
		Long:  ooxmlLongDesc,
	}

	cmd.AddCommand(newUnpackCmd())
	cmd.AddCommand(newPackCmd())
	cmd.AddCommand(newValidateCmd())

	return cmd
}
