package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/groblegark/initval"
	"github.com/groblegark/initval/internal/ui"
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func valuesAsMap(cfg *initval.Configuration) map[string]any {
	out := make(map[string]any, cfg.Len())
	for _, name := range cfg.Names() {
		out[name] = cfg.MustGet(name).Any()
	}
	return out
}

func printParamTable(cfg *initval.Configuration) {
	// Escape sequences inside cells would skew tabwriter's column widths,
	// so styling is applied only to the summary line.
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tVALUE")
	for _, name := range cfg.Names() {
		v := cfg.MustGet(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, v.Kind(), v)
	}
	w.Flush()
	fmt.Println()
	fmt.Println(ui.Muted(fmt.Sprintf("%d parameters for %s", cfg.Len(), cfg.App())))
}
