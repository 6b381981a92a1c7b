package cli

import (
	"fmt"

	"github.com/bootforge/bootforge/internal/branding"
	"github.com/bootforge/bootforge/internal/userdata"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the userdata directory",
	Long: `Create the userdata directory (~/.bootforge/userdata/ by default) with
env/ai.env, roles/ and profiles/cli.yml. Existing items are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := userdata.GetUserdataRoot()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Initializing userdata at %s\n", root)

		if err := userdata.InitGlobal(out); err != nil {
			return fmt.Errorf("initializing userdata: %w", err)
		}

		fmt.Fprintln(out, "\nUserdata initialized successfully.")
		fmt.Fprintf(out, "Add your API key to env/ai.env or run '%s config set ai.api-key <key>'.\n", branding.CLIName())
		return nil
	},
}
