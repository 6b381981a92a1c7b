package cli

import (
	"fmt"
	"sort"

	"github.com/bootforge/bootforge/internal/userdata"
	"github.com/spf13/cobra"
)

var envShowNoRedact bool

func init() {
	envShowCmd.Flags().BoolVar(&envShowNoRedact, "no-redact", false, "Show values without redaction")

	envCmd.AddCommand(envShowCmd)
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Inspect credential files",
	Long:  `Inspect the .env files kept under <userdata>/env.`,
}

var envShowCmd = &cobra.Command{
	Use:   "show [vendor]",
	Short: "Print env file contents (redacted by default)",
	Long: `Print the contents of <userdata>/env/<vendor>.env with sensitive values
redacted. The vendor defaults to "ai".

Use --no-redact to show actual values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vendor := userdata.AIEnvVendor
		if len(args) == 1 {
			vendor = args[0]
		}
		path, err := userdata.GetVendorEnvPath(vendor)
		if err != nil {
			return err
		}
		entries, err := userdata.LoadVendorEnv(vendor)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "(empty)")
			return nil
		}

		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(out, "# %s\n", path)
		for _, k := range keys {
			value := entries[k]
			if !envShowNoRedact {
				value = userdata.RedactValue(k, value)
			}
			fmt.Fprintf(out, "%s=%s\n", k, value)
		}
		return nil
	},
}
