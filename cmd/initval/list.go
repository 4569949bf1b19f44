package main

import (
	"github.com/spf13/cobra"

	"github.com/groblegark/initval"
)

var listCmd = &cobra.Command{
	Use:   "list <app>",
	Short: "List all parameters for an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initval.NewContext(cmd.Context(), args[0],
			initval.WithDebug(debugMode),
			initval.WithINIFile(iniFile),
			initval.WithSection(section),
		)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(valuesAsMap(cfg))
		}
		printParamTable(cfg)
		return nil
	},
}
