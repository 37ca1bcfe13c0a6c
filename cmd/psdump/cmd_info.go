package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tsawler/pscript"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print the metadata a document declares in its DSC comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, warnings, err := pscript.Open(args[0]).Info()
			if err != nil {
				return err
			}
			for _, w := range warnings {
				log.Warning(w.Message)
			}

			key := color.New(color.FgCyan).SprintFunc()
			printField := func(name, value string) {
				if value != "" {
					fmt.Printf("%s %s\n", key(name+":"), value)
				}
			}

			printField("Header", info.Header)
			printField("Title", info.Title)
			printField("Creator", info.Creator)
			printField("CreationDate", info.CreationDate)
			printField("For", info.For)
			printField("Copyright", info.Copyright)
			if info.Pages > 0 {
				printField("Pages", strconv.Itoa(info.Pages))
			}
			if info.LanguageLevel > 0 {
				printField("LanguageLevel", strconv.Itoa(info.LanguageLevel))
			}
			printField("Orientation", info.Orientation)
			printField("PageOrder", info.PageOrder)
			if bb := info.BoundingBox; bb != nil {
				printField("BoundingBox", fmt.Sprintf("%d %d %d %d", bb.LLX, bb.LLY, bb.URX, bb.URY))
			}
			if len(info.PageLabels) > 0 {
				printField("PageLabels", fmt.Sprintf("%v", info.PageLabels))
			}
			return nil
		},
	}
}
