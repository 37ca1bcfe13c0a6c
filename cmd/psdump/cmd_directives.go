package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tsawler/pscript"
	"github.com/tsawler/pscript/dsc"
)

// directiveRecord is the JSON shape of one DSC comment.
type directiveRecord struct {
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	HasValue bool   `json:"hasValue"`
	Deferred bool   `json:"deferred,omitempty"`
}

func newDirectivesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "directives <file>",
		Short: "List every DSC comment of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []directiveRecord
			warnings, err := pscript.Open(args[0]).Events(func(ev dsc.Event) error {
				d, ok := ev.(dsc.Directive)
				if !ok || ev.Kind() != dsc.KindDirective {
					return nil
				}
				value, hasValue := d.RawValue()
				_, deferred := d.(*dsc.AtendDirective)
				records = append(records, directiveRecord{
					Name:     d.Name(),
					Value:    value,
					HasValue: hasValue,
					Deferred: deferred,
				})
				return nil
			})
			for _, w := range warnings {
				log.Warning(w.Message)
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			for _, r := range records {
				if r.HasValue {
					fmt.Printf("%%%%%s: %s\n", r.Name, r.Value)
				} else {
					fmt.Printf("%%%%%s\n", r.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	return cmd
}
