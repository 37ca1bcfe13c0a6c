package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pscript"
)

func newCopyCmd() *cobra.Command {
	var output string
	var stripComments bool
	var skipEmbedded bool

	cmd := &cobra.Command{
		Use:   "copy <file>",
		Short: "Copy a document through the parser, re-serializing every event",
		Long: `Copy a document through the parser, re-serializing every event.

The copy is structurally equivalent to the input: continuation lines are
re-merged and re-split, and line terminators are normalized to LF. With
--strip-comments, ordinary PostScript comments are dropped; DSC directives
are always kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := pscript.Open(args[0])
			if stripComments {
				in = in.IgnoreComments()
			}
			if skipEmbedded {
				in = in.SkipEmbeddedDocuments()
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			warnings, err := in.CopyTo(out)
			for _, w := range warnings {
				log.Warning(w.Message)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&stripComments, "strip-comments", false, "drop ordinary PostScript comments")
	cmd.Flags().BoolVar(&skipEmbedded, "skip-embedded", false, "drop embedded documents")
	return cmd
}
