// Command initval inspects database-backed application parameters.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/groblegark/initval/dbconf"
	"github.com/groblegark/initval/internal/store/postgres"
)

var (
	iniFile     string
	section     string
	debugMode   bool
	jsonOutput  bool
	profileName string
)

func defaultINIFile() string {
	if v := os.Getenv("INITVAL_INI"); v != "" {
		return v
	}
	return dbconf.DefaultFile
}

func defaultSection() string {
	if v := os.Getenv("INITVAL_SECTION"); v != "" {
		return v
	}
	return dbconf.DefaultSection
}

var rootCmd = &cobra.Command{
	Use:   "initval",
	Short: "Inspect database-backed application parameters",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyProfile(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&iniFile, "ini", defaultINIFile(), "connection parameter file")
	rootCmd.PersistentFlags().StringVar(&section, "section", defaultSection(), "section of the connection parameter file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "read the debug parameter partition")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "named connection profile")

	rootCmd.AddCommand(appsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(profileCmd)
}

// openStore connects using the resolved INI file and section.
func openStore() (*postgres.PostgresStore, error) {
	params, err := dbconf.Load(iniFile, section)
	if err != nil {
		return nil, err
	}
	return postgres.Open(dbconf.DSN(params))
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
