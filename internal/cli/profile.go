package cli

import (
	"encoding/json"
	"fmt"

	"github.com/bootforge/bootforge/internal/userdata"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	profileName     string
	profileShowJSON bool
)

func init() {
	for _, c := range []*cobra.Command{profileSetCmd, profileGetCmd, profileShowCmd} {
		c.Flags().StringVar(&profileName, "name", "", "Profile name (default profile when empty)")
	}
	profileShowCmd.Flags().BoolVar(&profileShowJSON, "json", false, "Output as JSON")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage key/value profiles",
	Long: `Manage named key/value profiles stored under <userdata>/profiles.

The default profile is cli.yml; named profiles are cli-<name>.yml.`,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := userdata.NewProfiles()
		if err != nil {
			return err
		}
		name := args[0]
		created, err := profiles.Add(name)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "YAML file for profile '%s' created.\n", name)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "YAML file for profile '%s' already exists.\n", name)
		}
		return nil
	},
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := userdata.NewProfiles()
		if err != nil {
			return err
		}
		name := args[0]
		removed, err := profiles.Remove(name)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(cmd.OutOrStdout(), "YAML file for profile '%s' deleted.\n", name)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "No YAML file for profile '%s'.\n", name)
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a key value pair for a profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := userdata.NewProfiles()
		if err != nil {
			return err
		}
		if err := profiles.Set(profileName, args[0], args[1]); err != nil {
			return fmt.Errorf("updating profile %q: %w", profileName, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Key-value pair added to profile '%s'\n", profileName)
		return nil
	},
}

var profileGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get the value of a key for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := userdata.NewProfiles()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !profiles.Exists(profileName) {
			fmt.Fprintf(out, "YAML file for profile '%s' does not exist.\n", profileName)
			return nil
		}
		key := args[0]
		value, ok, err := profiles.Get(profileName, key)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(out, "Key '%s' not found in profile '%s'.\n", key, profileName)
			return nil
		}
		fmt.Fprintln(out, value)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := userdata.NewProfiles()
		if err != nil {
			return err
		}
		names, err := profiles.List()
		if err != nil {
			return fmt.Errorf("listing profiles: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(names) == 0 {
			fmt.Fprintln(out, "No profiles found. Run 'bootforge profile add <name>' to create one.")
			return nil
		}
		fmt.Fprintln(out, "Name")
		for _, name := range names {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print all values of a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := userdata.NewProfiles()
		if err != nil {
			return err
		}
		m, err := profiles.Load(profileName)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}

		var data []byte
		if profileShowJSON {
			data, err = json.MarshalIndent(m, "", "  ")
			if err == nil {
				data = append(data, '\n')
			}
		} else {
			data, err = yaml.Marshal(m)
		}
		if err != nil {
			return fmt.Errorf("marshaling profile: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
