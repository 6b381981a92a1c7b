package cli

import (
	"fmt"
	"sort"

	"github.com/bootforge/bootforge/internal/model"
	"github.com/bootforge/bootforge/internal/userdata"
	"github.com/spf13/cobra"
)

var roleName string

func init() {
	for _, c := range []*cobra.Command{roleGetCmd, roleSetCmd, roleShowCmd} {
		c.Flags().StringVar(&roleName, "role", userdata.DefaultRole, "Role name (default role when empty)")
	}

	roleCmd.AddCommand(roleGetCmd)
	roleCmd.AddCommand(roleSetCmd)
	roleCmd.AddCommand(roleShowCmd)
	roleCmd.AddCommand(roleListCmd)
	rootCmd.AddCommand(roleCmd)
}

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Inspect the variable store",
	Long: `Read and write the per-role variables that actions persist.

The default role lives at <userdata>/roles/vars.yml; named roles at
<userdata>/roles/<role>/vars.yml.`,
}

var roleGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a variable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := userdata.NewRoleStore()
		if err != nil {
			return err
		}
		value, ok, err := store.Get(roleName, args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("variable %q is not set for role %q", args[0], roleName)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var roleSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a variable",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := userdata.NewRoleStore()
		if err != nil {
			return err
		}
		if err := store.Update(roleName, args[0], model.Infer(args[1])); err != nil {
			return fmt.Errorf("updating role %q: %w", roleName, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", args[0], store.VarsPath(roleName))
		return nil
	},
}

var roleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print all variables of a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := userdata.NewRoleStore()
		if err != nil {
			return err
		}
		vars, err := store.Load(roleName)
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(vars))
		for k := range vars {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", k, vars[k])
		}
		return nil
	},
}

var roleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List named roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := userdata.NewRoleStore()
		if err != nil {
			return err
		}
		roles, err := store.List()
		if err != nil {
			return err
		}
		if len(roles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No named roles found.")
			return nil
		}
		for _, r := range roles {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", r)
		}
		return nil
	},
}
