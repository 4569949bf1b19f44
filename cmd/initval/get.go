package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groblegark/initval"
)

var getCmd = &cobra.Command{
	Use:   "get <app> <name>",
	Short: "Print one parameter value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initval.NewContext(cmd.Context(), args[0],
			initval.WithDebug(debugMode),
			initval.WithINIFile(iniFile),
			initval.WithSection(section),
		)
		if err != nil {
			return err
		}
		v, err := cfg.Get(args[1])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(map[string]any{args[1]: v.Any()})
		}
		fmt.Println(v)
		return nil
	},
}
