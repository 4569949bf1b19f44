package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/groblegark/initval/internal/ui"
)

// ProfilesConfig holds all named connection profiles and tracks which one
// is active.
type ProfilesConfig struct {
	Active   string             `toml:"active"`
	Profiles map[string]Profile `toml:"profiles"`
}

// Profile is a named connection preset.
type Profile struct {
	INI         string `toml:"ini"`
	Section     string `toml:"section,omitempty"`
	Debug       bool   `toml:"debug,omitempty"`
	Description string `toml:"description,omitempty"`
}

func profilesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "initval")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.toml"), nil
}

func loadProfiles() (ProfilesConfig, error) {
	path, err := profilesPath()
	if err != nil {
		return ProfilesConfig{}, err
	}
	var cfg ProfilesConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return ProfilesConfig{Profiles: map[string]Profile{}}, nil
		}
		return ProfilesConfig{}, err
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	return cfg, nil
}

func saveProfiles(cfg ProfilesConfig) error {
	path, err := profilesPath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// applyProfile resolves the requested (or active) profile and fills in
// connection settings the user did not override with explicit flags.
func applyProfile(cmd *cobra.Command) error {
	cfg, err := loadProfiles()
	if err != nil {
		return err
	}
	name := profileName
	if name == "" {
		name = cfg.Active
	}
	if name == "" {
		return nil
	}
	p, ok := cfg.Profiles[name]
	if !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	flags := cmd.Flags()
	if p.INI != "" && !flags.Changed("ini") {
		iniFile = p.INI
	}
	if p.Section != "" && !flags.Changed("section") {
		section = p.Section
	}
	if !flags.Changed("debug") {
		debugMode = p.Debug
	}
	return nil
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named connection profiles",
	// Profile subcommands are local file operations; don't resolve the
	// active profile first.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name> <ini-file>",
	Short: "Add or update a profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadProfiles()
		if err != nil {
			return err
		}
		sectionFlag, _ := cmd.Flags().GetString("section")
		debugFlag, _ := cmd.Flags().GetBool("debug")
		desc, _ := cmd.Flags().GetString("description")
		cfg.Profiles[args[0]] = Profile{
			INI:         args[1],
			Section:     sectionFlag,
			Debug:       debugFlag,
			Description: desc,
		}
		if err := saveProfiles(cfg); err != nil {
			return err
		}
		fmt.Printf("profile %q saved\n", args[0])
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadProfiles()
		if err != nil {
			return err
		}
		names := make([]string, 0, len(cfg.Profiles))
		for name := range cfg.Profiles {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tINI\tSECTION\tDEBUG\tDESCRIPTION")
		for _, name := range names {
			p := cfg.Profiles[name]
			display := name
			if name == cfg.Active {
				display = ui.Bold(name + " *")
			}
			sec := p.Section
			if sec == "" {
				sec = defaultSection()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", display, p.INI, sec, p.Debug, p.Description)
		}
		return w.Flush()
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadProfiles()
		if err != nil {
			return err
		}
		if _, ok := cfg.Profiles[args[0]]; !ok {
			return fmt.Errorf("profile %q not found", args[0])
		}
		cfg.Active = args[0]
		return saveProfiles(cfg)
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadProfiles()
		if err != nil {
			return err
		}
		if _, ok := cfg.Profiles[args[0]]; !ok {
			return fmt.Errorf("profile %q not found", args[0])
		}
		delete(cfg.Profiles, args[0])
		if cfg.Active == args[0] {
			cfg.Active = ""
		}
		return saveProfiles(cfg)
	},
}

func init() {
	profileAddCmd.Flags().String("section", "", "section of the connection parameter file")
	profileAddCmd.Flags().Bool("debug", false, "read the debug parameter partition")
	profileAddCmd.Flags().String("description", "", "free-form description")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileRemoveCmd)
}
