package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "List the configured forms and what each can wear",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		table, err := loadForms(cfg.Content)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, def := range table.All() {
			fmt.Fprintf(out, "%-16s removes %-40s wears %v\n", def.Form, def.Removes, def.Wearable)
		}
		return nil
	},
}
