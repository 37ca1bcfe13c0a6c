package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("psdump")

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "psdump",
		Short: "Inspect DSC-compliant PostScript documents",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newStructureCmd())
	rootCmd.AddCommand(newDirectivesCmd())
	rootCmd.AddCommand(newCopyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
