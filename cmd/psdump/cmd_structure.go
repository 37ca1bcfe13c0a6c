package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tsawler/pscript"
	"github.com/tsawler/pscript/dsc"
)

func newStructureCmd() *cobra.Command {
	var noComments bool
	var skipEmbedded bool

	cmd := &cobra.Command{
		Use:   "structure <file>",
		Short: "Dump the classified event stream of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := pscript.Open(args[0])
			if noComments {
				in = in.IgnoreComments()
			}
			if skipEmbedded {
				in = in.SkipEmbeddedDocuments()
			}

			header := color.New(color.FgGreen, color.Bold)
			directive := color.New(color.FgCyan)
			comment := color.New(color.FgYellow)
			eof := color.New(color.FgMagenta, color.Bold)

			warnings, err := in.Events(func(ev dsc.Event) error {
				switch e := ev.(type) {
				case *dsc.HeaderComment:
					header.Printf("HEADER    %%!%s\n", e.Text)
				case *dsc.Comment:
					comment.Printf("COMMENT   %%%s\n", e.Text)
				case *dsc.ContentLine:
					fmt.Printf("CONTENT   %s\n", e.Text)
				case dsc.Directive:
					if e.Kind() == dsc.KindEOF {
						eof.Printf("EOF       %%%%EOF\n")
						break
					}
					if v, ok := e.RawValue(); ok {
						directive.Printf("DIRECTIVE %%%%%s: %s\n", e.Name(), v)
					} else {
						directive.Printf("DIRECTIVE %%%%%s\n", e.Name())
					}
				}
				return nil
			})
			for _, w := range warnings {
				log.Warning(w.Message)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "drop ordinary PostScript comments")
	cmd.Flags().BoolVar(&skipEmbedded, "skip-embedded", false, "skip embedded documents")
	return cmd
}
