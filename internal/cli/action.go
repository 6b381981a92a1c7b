package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bootforge/bootforge/internal/actions"
	"github.com/bootforge/bootforge/internal/engine"
	"github.com/bootforge/bootforge/internal/execx"
	"github.com/bootforge/bootforge/internal/logging"
	"github.com/bootforge/bootforge/internal/maven"
	"github.com/bootforge/bootforge/internal/model"
	"github.com/bootforge/bootforge/internal/prompt"
	"github.com/bootforge/bootforge/internal/template"
	"github.com/bootforge/bootforge/internal/userdata"
	"github.com/spf13/cobra"
)

var (
	actionPath         string
	actionRole         string
	actionTemplateRoot string
	actionSet          []string
	actionNoTTY        bool
)

func init() {
	actionRunCmd.Flags().StringVar(&actionPath, "path", "", "Project directory (defaults to the current directory)")
	actionRunCmd.Flags().StringVar(&actionRole, "role", userdata.DefaultRole, "Role whose variables seed and receive answers")
	actionRunCmd.Flags().StringVar(&actionTemplateRoot, "template-root", "", "Directory for generate.from templates (defaults to the action file's directory)")
	actionRunCmd.Flags().StringArrayVar(&actionSet, "set", nil, "Variable key=value pairs (can be specified multiple times)")
	actionRunCmd.Flags().BoolVar(&actionNoTTY, "no-tty", false, "Use plain line prompts even on a terminal")

	actionCmd.AddCommand(actionRunCmd)
	actionCmd.AddCommand(actionValidateCmd)
	rootCmd.AddCommand(actionCmd)
}

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Run declarative action files",
}

var actionRunCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run the actions of a YAML or TOML action file",
	Long: `Run every action of an action file in order against a project.

The variable model starts from the role's stored variables; --set values
override them. Answers to vars and define questions are written back to
the role.`,
	Args: cobra.ExactArgs(1),
	RunE: runAction,
}

var actionValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an action file without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := actions.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d action(s) OK\n", args[0], len(f.Actions))
		return nil
	},
}

func runAction(cmd *cobra.Command, args []string) error {
	file, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}
	f, err := actions.LoadFile(file)
	if err != nil {
		return err
	}

	projectDir, err := resolveProjectDir(actionPath)
	if err != nil {
		return err
	}
	templateRoot := actionTemplateRoot
	if templateRoot == "" {
		templateRoot = filepath.Dir(file)
	}

	store, err := userdata.NewRoleStore()
	if err != nil {
		return err
	}
	stored, err := store.Load(actionRole)
	if err != nil {
		return err
	}
	m := model.FromMap(stored)
	sets, err := parseSetArgs(actionSet)
	if err != nil {
		return err
	}
	for _, kv := range sets {
		m.Set(kv[0], model.Infer(kv[1]))
	}

	log := newLogger()
	out := newMessenger(cmd.OutOrStdout())
	eng := &engine.Engine{
		ProjectDir:   projectDir,
		TemplateRoot: templateRoot,
		Role:         actionRole,
		Model:        m,
		Renderer:     template.MustHandlebars(),
		Asker:        newAsker(cmd),
		Store:        store,
		Exec:         &execx.Runner{Dir: projectDir},
		Pom:          maven.Editor{},
		Out:          out,
		Log:          log,
	}

	res, err := eng.Run(cmd.Context(), f.Actions)
	if err != nil {
		return err
	}
	if len(res.Warnings) > 0 {
		out.Warnf("Executed %d action(s) with %d warning(s).", res.Executed, len(res.Warnings))
		return nil
	}
	out.Successf("Executed %d action(s).", res.Executed)
	return nil
}

// newAsker picks the bubbletea prompts when both ends are a terminal.
func newAsker(cmd *cobra.Command) prompt.Asker {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if !actionNoTTY && in == os.Stdin && logging.IsTerminal(os.Stdin) && logging.IsTerminal(out) {
		return &prompt.TeaAsker{In: in, Out: out}
	}
	return prompt.NewLineAsker(in, out)
}

// parseSetArgs splits key=value flags, keeping their order.
func parseSetArgs(inputs []string) ([][2]string, error) {
	result := make([][2]string, 0, len(inputs))
	for _, input := range inputs {
		parts := strings.SplitN(input, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", input)
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("invalid --set %q: key cannot be empty", input)
		}
		result = append(result, [2]string{key, strings.TrimSpace(parts[1])})
	}
	return result, nil
}

// resolveProjectDir returns the absolute project directory, defaulting to the
// working directory.
func resolveProjectDir(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		path = wd
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project directory %s is not a directory", abs)
	}
	return abs, nil
}
