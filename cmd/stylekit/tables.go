package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/styleprops"
	"github.com/alexisbeaulieu97/stylekit/internal/tui"
)

type handlerJSON struct {
	Prop string   `json:"prop"`
	LTR  []string `json:"ltr"`
	RTL  []string `json:"rtl"`
}

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the abstract style props of the selected handler table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := a.settings.HandlerTable()
			if a.settings.Format != "json" {
				fmt.Fprintln(cmd.OutOrStdout(), tui.HandlerTable(table))
				return nil
			}

			entries := make([]handlerJSON, 0, table.Len())
			for _, key := range table.Keys() {
				h, _ := table.Lookup(key)
				entries = append(entries, handlerJSON{
					Prop: key,
					LTR:  h.Name.Resolve(styleprops.LTR),
					RTL:  h.Name.Resolve(styleprops.RTL),
				})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		},
	}
}
