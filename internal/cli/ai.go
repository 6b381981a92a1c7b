package cli

import (
	"fmt"

	"github.com/bootforge/bootforge/internal/ai"
	"github.com/bootforge/bootforge/internal/config"
	"github.com/bootforge/bootforge/internal/maven"
	"github.com/bootforge/bootforge/internal/merge"
	"github.com/bootforge/bootforge/internal/template"
	"github.com/spf13/cobra"
)

var (
	aiDescription string
	aiPath        string
	aiFailFast    bool
)

func init() {
	aiAddCmd.Flags().StringVar(&aiDescription, "description", "", "What the generated code should do")
	aiAddCmd.Flags().StringVar(&aiPath, "path", "", "Project directory (defaults to the current directory)")
	aiAddCmd.Flags().BoolVar(&aiFailFast, "fail-fast", false, "Stop at the first artifact that cannot be written")
	_ = aiAddCmd.MarkFlagRequired("description")

	aiCmd.AddCommand(aiAddCmd)
	rootCmd.AddCommand(aiCmd)
}

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Generate code with the configured model",
}

var aiAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Generate code from a description and merge it into the project",
	Long: `Generate code for a Spring Boot project from a free-text description.

The response is saved as README-ai-<project>.md in the project directory;
its Java classes, tests and Maven dependencies are then merged into the
project. Existing files are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir, err := resolveProjectDir(aiPath)
		if err != nil {
			return err
		}

		settings := config.LoadAI()
		gen, err := ai.NewGeminiGenerator(cmd.Context(), settings)
		if err != nil {
			return err
		}
		log := newLogger()
		log.Debug().Str("backend", gen.Name()).Dur("timeout", settings.Timeout).Msg("generation backend ready")

		policy := merge.ContinueOnError
		if aiFailFast {
			policy = merge.AbortOnError
		}
		out := newMessenger(cmd.OutOrStdout())
		h := &ai.Handler{
			Generator: gen,
			Renderer:  template.MustHandlebars(),
			Deps:      maven.Editor{},
			Policy:    policy,
			Timeout:   settings.Timeout,
			Out:       out,
			Log:       log,
		}

		res, err := h.Add(cmd.Context(), aiDescription, projectDir)
		if res != nil && len(res.Gaps) > 0 {
			out.Warnf("%d code block(s) could not be classified; see %s.", len(res.Gaps), ai.ReportName(res.Project))
		}
		if err != nil {
			return fmt.Errorf("adding %s code: %w", projectLabel(res), err)
		}
		out.Successf("Wrote %d file(s).", len(res.Merge.Written))
		return nil
	},
}

func projectLabel(res *ai.AddResult) string {
	if res == nil {
		return "generated"
	}
	return res.Project.DisplayName
}
